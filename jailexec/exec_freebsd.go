package jailexec

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"

	"fastcat.org/go/jrun/jail"
)

// Jailed configures cmd to start inside j and returns cmd for chaining. The
// handle is copied by value into the command; the caller's copy need not
// outlive the spawn.
//
// The attach runs in the forked child strictly after fork and strictly
// before exec, exactly once per spawn attempt. On failure the child never
// execs, Start returns the attach errno through its usual error path, and
// the parent's own jail membership is untouched. Attach succeeding is
// irreversible: there is no detach, for the child or anyone else.
//
// Misuse panics rather than erroring: a nil or already-started command, an
// invalid handle, or a command already bound to a different jail are
// programming defects, and mapping them into spawn errors would let a logic
// bug read as a transient attach failure. A spawn performs exactly one
// attach; binding the same jail again is a no-op.
func Jailed(cmd *exec.Cmd, j jail.Jail) *exec.Cmd {
	if cmd == nil {
		panic(fmt.Errorf("jailexec: Jailed on nil command"))
	}
	if cmd.Process != nil {
		panic(fmt.Errorf("jailexec: Jailed on already-started command %q", cmd.Path))
	}
	if !j.Valid() {
		panic(fmt.Errorf("jailexec: Jailed with invalid handle %v", j))
	}
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	if cur := cmd.SysProcAttr.Jail; cur != 0 && cur != j.JID {
		panic(fmt.Errorf("jailexec: command %q already bound to jail #%d, cannot bind %v",
			cmd.Path, cur, j))
	}
	cmd.SysProcAttr.Jail = j.JID
	return cmd
}

// Command is like exec.CommandContext with the result already bound to j.
func Command(ctx context.Context, j jail.Jail, name string, arg ...string) *exec.Cmd {
	return Jailed(exec.CommandContext(ctx, name, arg...), j)
}
