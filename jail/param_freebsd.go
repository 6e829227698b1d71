package jail

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

// buffer sizes for output parameters, from the kernel limits on the
// corresponding jail parameters
const (
	maxNameLen = 256  // MAXHOSTNAMELEN, jail names share the limit
	maxHostLen = 256  // MAXHOSTNAMELEN
	maxPathLen = 1024 // MAXPATHLEN
)

// param is one jail_get(2) parameter: a NUL-terminated key and a value
// buffer. Whether the value is an input (selector) or an output (filled on
// return) depends on the key.
type param struct {
	key   []byte
	value []byte
}

func stringParam(key, value string) param {
	return param{
		key:   append([]byte(key), 0),
		value: append([]byte(value), 0),
	}
}

func outParam(key string, size int) param {
	return param{
		key:   append([]byte(key), 0),
		value: make([]byte, size),
	}
}

func intParam(key string, value int32) param {
	p := outParam(key, 4)
	*(*int32)(unsafe.Pointer(&p.value[0])) = value
	return p
}

// cstring returns the value buffer up to its first NUL.
func (p *param) cstring() string {
	b := p.value
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// iovecs flattens params into the key/value iovec pairs jail_get(2) expects.
// The returned iovecs point into the params' buffers, which must stay
// reachable until the syscall returns.
func iovecs(params []param) []unix.Iovec {
	iovs := make([]unix.Iovec, 0, len(params)*2)
	for i := range params {
		p := &params[i]
		key := unix.Iovec{Base: &p.key[0]}
		key.SetLen(len(p.key))
		var value unix.Iovec
		if len(p.value) > 0 {
			value.Base = &p.value[0]
			value.SetLen(len(p.value))
		}
		iovs = append(iovs, key, value)
	}
	return iovs
}

// jailGet wraps jail_get(2), returning the matched JID.
func jailGet(params []param, flags int) (int, error) {
	iovs := iovecs(params)
	jid, _, errno := unix.Syscall(unix.SYS_JAIL_GET,
		uintptr(unsafe.Pointer(&iovs[0])), uintptr(len(iovs)), uintptr(flags))
	if errno != 0 {
		return 0, errno
	}
	return int(jid), nil
}
