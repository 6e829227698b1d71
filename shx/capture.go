package shx

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// spillLimit is how much captured output is held in memory before shifting
// to an unlinked temp file.
const spillLimit = 1 << 20

// capture accumulates one output stream of a command. Small outputs stay in
// a memory buffer; past spillLimit the capture shifts to an anonymous temp
// file so a chatty command can't balloon the process heap.
type capture struct {
	mem  *bytes.Buffer
	file *os.File
}

func newCapture() *capture {
	return &capture{mem: &bytes.Buffer{}}
}

func (c *capture) Write(p []byte) (int, error) {
	if c.file == nil && c.mem.Len()+len(p) > spillLimit {
		if err := c.spill(); err != nil {
			return 0, err
		}
	}
	if c.file != nil {
		return c.file.Write(p)
	}
	return c.mem.Write(p)
}

func (c *capture) spill() error {
	f, err := os.CreateTemp("", "shx-capture-")
	if err != nil {
		return err
	}
	// unlink immediately so the file is anonymous and can't leak on crash
	err = os.Remove(f.Name())
	if err == nil {
		_, err = f.Write(c.mem.Bytes())
	}
	if err != nil {
		return errors.Join(err, f.Close())
	}
	c.file = f
	c.mem = nil
	return nil
}

// doneWriting rewinds a spilled capture so reading starts at the beginning.
func (c *capture) doneWriting() error {
	if c == nil || c.file == nil {
		return nil
	}
	_, err := c.file.Seek(0, io.SeekStart)
	return err
}

func (c *capture) reader() io.Reader {
	if c == nil {
		return nil
	}
	if c.file != nil {
		return c.file
	}
	return c.mem
}

func (c *capture) Close() error {
	if c == nil {
		return nil
	}
	c.mem = nil
	if c.file != nil {
		err := c.file.Close()
		c.file = nil
		return err
	}
	return nil
}
