package shx

import (
	"os/exec"

	"fastcat.org/go/jrun/jail"
	"fastcat.org/go/jrun/jailexec"
)

// WithJail arranges for the command to start inside j: the kernel attaches
// the forked child to the jail before it execs, so the program never runs
// outside it. An attach failure becomes an ordinary start error from Run or
// Start, and the parent is unaffected.
//
// The handle is copied into the option, so it stays valid for later spawns
// regardless of what the caller does with its copy. Binding two different
// jails to one command is a defect and panics; see [jailexec.Jailed] for the
// contract.
func WithJail(j jail.Jail) Option {
	return optionExecFunc(func(cmd *exec.Cmd, _ *Result) {
		jailexec.Jailed(cmd, j)
	})
}
