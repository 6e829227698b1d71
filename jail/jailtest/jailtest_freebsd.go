// Package jailtest creates disposable jails for integration tests.
//
// The public jail API deliberately has no lifecycle operations, so tests
// talk to jail_set(2) and jail_remove(2) directly. Creating a jail requires
// root; helpers skip the calling test otherwise.
package jailtest

import (
	"os"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"

	"fastcat.org/go/jrun/jail"
)

const jailFlagCreate = 0x01 // JAIL_CREATE

// Create starts a persistent jail rooted at the host filesystem (so host
// binaries stay runnable inside it) and returns its handle. The jail is
// removed during test cleanup. Skips the test when not running as root.
func Create(t *testing.T, name string) jail.Jail {
	t.Helper()
	if os.Geteuid() != 0 {
		t.Skip("creating jails requires root")
	}
	jid, errno := jailSet(name)
	if errno != 0 {
		t.Fatalf("jail_set create %q: %v", name, errno)
	}
	j := jail.Jail{JID: jid}
	t.Cleanup(func() { Remove(t, j) })
	return j
}

// Remove tears down a jail created by Create. Removing a jail that is
// already gone is not an error, so tests can remove early to exercise
// dead-handle paths and still run their cleanup.
func Remove(t *testing.T, j jail.Jail) {
	t.Helper()
	_, _, errno := unix.Syscall(unix.SYS_JAIL_REMOVE, uintptr(j.JID), 0, 0)
	switch errno {
	case 0, unix.EINVAL, unix.ENOENT:
		// EINVAL/ENOENT: jid no longer names a jail
	default:
		t.Fatalf("jail_remove %v: %v", j, errno)
	}
}

// jailSet wraps jail_set(2) with the fixed parameter set tests need: the
// given name, path /, a hostname, and persist so the jail survives with no
// processes in it.
func jailSet(name string) (int, unix.Errno) {
	keys := [][]byte{
		append([]byte("name"), 0),
		append([]byte("path"), 0),
		append([]byte("host.hostname"), 0),
		append([]byte("persist"), 0),
	}
	values := [][]byte{
		append([]byte(name), 0),
		append([]byte("/"), 0),
		append([]byte(name), 0),
		nil, // boolean parameter: present with no value
	}
	iovs := make([]unix.Iovec, 0, len(keys)*2)
	for i := range keys {
		key := unix.Iovec{Base: &keys[i][0]}
		key.SetLen(len(keys[i]))
		var value unix.Iovec
		if len(values[i]) > 0 {
			value.Base = &values[i][0]
			value.SetLen(len(values[i]))
		}
		iovs = append(iovs, key, value)
	}
	jid, _, errno := unix.Syscall(unix.SYS_JAIL_SET,
		uintptr(unsafe.Pointer(&iovs[0])), uintptr(len(iovs)), jailFlagCreate)
	return int(jid), errno
}
