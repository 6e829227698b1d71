// Package jail provides handles to running FreeBSD jails.
//
// A [Jail] is a plain value naming a jail by its kernel-assigned JID.
// Holding one does not keep the jail alive: the jail may be removed between
// lookup and use, in which case operations report the kernel's error.
//
// Jail lifecycle (creation, reconfiguration, removal) is out of scope here;
// handles refer to jails managed elsewhere (jail(8), jail.conf(5), or another
// supervisor). The attach operation and the lookups only exist in FreeBSD
// builds.
package jail

import (
	"errors"
	"fmt"
	"strconv"
	"syscall"
)

// Jail identifies a running jail by JID. The zero value is invalid.
//
// Jail is a small plain value and is safe to copy freely; it holds no
// resources and no pointers into this process, which is what makes it safe
// to carry across a fork boundary.
type Jail struct {
	JID int
}

func (j Jail) String() string {
	return "jail #" + strconv.Itoa(j.JID)
}

// Valid reports whether j could name a jail. It does not check that the jail
// is (still) alive; only the kernel can answer that, at use time.
func (j Jail) Valid() bool {
	return j.JID > 0
}

// Info describes a running jail, as reported by the kernel.
type Info struct {
	Jail
	Name     string
	Path     string
	Hostname string
}

// ErrNotFound is reported (wrapped) by lookups when no live jail matches.
var ErrNotFound = errors.New("jail not found")

// AttachError reports a failed jail_attach(2). It is the only error kind
// Attach produces: the kernel does not distinguish a removed jail from an
// otherwise unusable one, and neither do we.
type AttachError struct {
	JID   int
	Errno syscall.Errno
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("attach to jail #%d: %v", e.JID, e.Errno)
}

func (e *AttachError) Unwrap() error {
	return e.Errno
}
