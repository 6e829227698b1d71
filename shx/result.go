package shx

import (
	"errors"
	"io"
	"os"
)

// Result holds the outcome of running a command: its exit state and any
// captured output.
type Result struct {
	stdout *capture
	stderr *capture

	exitErr      error
	processState *os.ProcessState
}

// Err returns the command's exit error, if any.
func (r *Result) Err() error {
	return r.exitErr
}

// ExitCode returns the command's exit code, or -1 if it did not exit
// normally (killed by signal, or never waited on).
func (r *Result) ExitCode() int {
	if r.processState == nil {
		return -1
	}
	return r.processState.ExitCode()
}

// Stdout returns a reader over the captured stdout (or the combined stream
// for CaptureCombined). It returns nil if stdout was not captured.
func (r *Result) Stdout() io.Reader {
	return r.stdout.reader()
}

// Stderr returns a reader over the captured stderr, or nil if stderr was not
// captured separately.
func (r *Result) Stderr() io.Reader {
	return r.stderr.reader()
}

// Close releases any resources held by captured output.
//
// If no output capture was enabled, it is safe to skip calling this.
func (r *Result) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	if r.stderr != nil && r.stderr != r.stdout {
		errs = append(errs, r.stderr.Close())
	}
	r.stderr = nil
	if r.stdout != nil {
		errs = append(errs, r.stdout.Close())
		r.stdout = nil
	}
	return errors.Join(errs...)
}

func (r *Result) doneWriting() error {
	var errs []error
	if r.stdout != nil {
		errs = append(errs, r.stdout.doneWriting())
	}
	if r.stderr != nil && r.stderr != r.stdout {
		errs = append(errs, r.stderr.doneWriting())
	}
	return errors.Join(errs...)
}

func (r *Result) resetStdout() {
	if r.stdout != nil {
		if r.stderr == r.stdout {
			r.stderr = nil
		}
		_ = r.stdout.Close()
		r.stdout = nil
	}
}

func (r *Result) resetStderr() {
	if r.stderr != nil {
		if r.stderr != r.stdout {
			_ = r.stderr.Close()
		}
		r.stderr = nil
	}
}
