package shx

import (
	"io"
	"os"
	"os/exec"
)

// Option customizes a Cmd. Options have two hooks: apply runs when the option
// is added to the builder, applyExec runs against the assembled exec.Cmd just
// before each spawn. Most options only need one of the two.
type Option interface {
	apply(*Cmd)
	applyExec(*exec.Cmd, *Result)
}

type optionCmdFunc func(*Cmd)

func (f optionCmdFunc) apply(c *Cmd)                 { f(c) }
func (f optionCmdFunc) applyExec(*exec.Cmd, *Result) {}

type optionExecFunc func(cmd *exec.Cmd, res *Result)

func (f optionExecFunc) apply(*Cmd)                           {}
func (f optionExecFunc) applyExec(cmd *exec.Cmd, res *Result) { f(cmd, res) }

// WithCombinedError changes Run to return all errors in the error return,
// instead of only start errors there and exit errors in the Result.
func WithCombinedError() Option {
	return optionCmdFunc(func(c *Cmd) {
		c.combineExecErrors = true
	})
}

// WithEnv adds an environment variable on top of the inherited environment.
func WithEnv(key, value string) Option {
	return optionCmdFunc(func(c *Cmd) {
		c.env[key] = value
	})
}

// WithCwd sets the working directory for the command.
func WithCwd(path string) Option {
	return optionExecFunc(func(cmd *exec.Cmd, _ *Result) {
		cmd.Dir = path
	})
}

// OnStarted registers a callback invoked with the child process right after
// a successful spawn, before any waiting.
func OnStarted(fn func(*os.Process)) Option {
	return optionCmdFunc(func(c *Cmd) {
		c.onStarted = fn
	})
}

// WithStdin feeds the command's stdin from r. The caller remains responsible
// for closing r if needed once the command completes.
func WithStdin(r io.Reader) Option {
	return optionExecFunc(func(cmd *exec.Cmd, _ *Result) {
		cmd.Stdin = r
	})
}

// CaptureOutput captures the command's stdout into the Result.
func CaptureOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.resetStdout()
		res.stdout = newCapture()
		cmd.Stdout = res.stdout
	})
}

// CaptureError captures the command's stderr into the Result.
func CaptureError() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.resetStderr()
		res.stderr = newCapture()
		cmd.Stderr = res.stderr
	})
}

// CaptureCombined captures stdout and stderr interleaved into a single
// stream, readable from the Result's Stdout.
func CaptureCombined() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.resetStdout()
		res.resetStderr()
		res.stdout = newCapture()
		res.stderr = res.stdout
		cmd.Stdout, cmd.Stderr = res.stdout, res.stdout
	})
}

// PassStdio connects the command's stdin, stdout, and stderr to this
// process's, clearing any prior capture configuration.
func PassStdio() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.resetStdout()
		res.resetStderr()
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	})
}

// PassOutput connects the command's stdout and stderr to this process's,
// clearing any prior capture configuration. Stdin is left alone.
func PassOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.resetStdout()
		res.resetStderr()
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	})
}
