package jail

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Attach moves the calling process into the jail, permanently. There is no
// detach; an attached process can only move deeper, into a child jail.
//
// On failure nothing changes and the returned error is an [*AttachError]
// wrapping the kernel errno. Calling Attach on an invalid handle is a
// programming error and panics rather than returning an error, so that a
// corrupted handle cannot masquerade as a transient attach failure.
//
// Most callers want a child process confined rather than themselves; see
// package jailexec and shx.WithJail, which arrange for the kernel to perform
// this attach in the freshly forked child, before it execs.
func (j Jail) Attach() error {
	if !j.Valid() {
		panic(fmt.Errorf("jail: Attach on invalid handle %v", j))
	}
	if _, _, errno := unix.Syscall(unix.SYS_JAIL_ATTACH, uintptr(j.JID), 0, 0); errno != 0 {
		return &AttachError{JID: j.JID, Errno: errno}
	}
	return nil
}

// Jailed reports whether the current process is itself confined to a jail.
func Jailed() (bool, error) {
	v, err := unix.SysctlUint32("security.jail.jailed")
	if err != nil {
		return false, fmt.Errorf("reading security.jail.jailed: %w", err)
	}
	return v != 0, nil
}
