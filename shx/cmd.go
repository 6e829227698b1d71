// Package shx runs external commands through a small option-driven builder.
//
// A [Cmd] is configured up front with [Option] values and then either [Cmd.Run]
// synchronously, or [Cmd.Start]ed and managed through the returned [Proc].
// Options split into two phases: builder mutations applied immediately, and
// exec.Cmd mutations applied when the spawn is assembled, so a Cmd can be run
// more than once.
package shx

import (
	"context"
	"errors"
	"maps"
	"os"
	"os/exec"
	"strings"
)

type Cmd struct {
	cmdAndArgs        []string
	env               map[string]string
	combineExecErrors bool
	onStarted         func(*os.Process)

	opts []Option
}

func New(name string, args ...string) *Cmd {
	return &Cmd{
		cmdAndArgs: append([]string{name}, args...),
		env:        make(map[string]string),
	}
}

// Run is a convenience for New followed by With and Run.
func Run(ctx context.Context, cmdAndArgs []string, opts ...Option) (*Result, error) {
	return New(cmdAndArgs[0], cmdAndArgs[1:]...).With(opts...).Run(ctx)
}

// With applies options to the command.
func (c *Cmd) With(opts ...Option) *Cmd {
	c.opts = append(c.opts, opts...)
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Start launches the command without waiting for it, returning a Proc to
// manage it. The Result is not usable until the Proc has been waited on.
func (c *Cmd) Start(ctx context.Context) (*Proc, error) {
	cmd := exec.CommandContext(ctx, c.cmdAndArgs[0], c.cmdAndArgs[1:]...)
	c.applyEnv(cmd)
	res := &Result{}
	for _, opt := range c.opts {
		opt.applyExec(cmd, res)
	}
	if err := cmd.Start(); err != nil {
		_ = res.Close()
		return nil, err
	}
	if c.onStarted != nil {
		c.onStarted(cmd.Process)
	}
	return &Proc{cmd: cmd, res: res}, nil
}

// Run runs the command and waits for it to finish.
//
// If the command fails to start, it returns a nil Result and the error. If
// the command starts but exits with an error, that error is in the Result;
// use WithCombinedError to have it copied to the top-level error when the
// caller doesn't care about the distinction.
func (c *Cmd) Run(ctx context.Context) (*Result, error) {
	p, err := c.Start(ctx)
	if err != nil {
		return nil, err
	}
	res, _ := p.Wait()
	if c.combineExecErrors {
		return res, res.Err()
	}
	return res, nil
}

func (c *Cmd) applyEnv(cmd *exec.Cmd) {
	if len(c.env) == 0 {
		return
	}
	curEnv := os.Environ()
	fullEnv := make(map[string]string, len(curEnv)+len(c.env))
	for _, e := range curEnv {
		name, val, _ := strings.Cut(e, "=")
		fullEnv[name] = val
	}
	maps.Copy(fullEnv, c.env)
	cmd.Env = make([]string, 0, len(fullEnv))
	for k, v := range fullEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
}

// Proc is a started command.
type Proc struct {
	cmd    *exec.Cmd
	res    *Result
	waited bool
}

// Process exposes the underlying os.Process, e.g. for its Pid.
func (p *Proc) Process() *os.Process {
	return p.cmd.Process
}

// Signal sends sig to the running process.
func (p *Proc) Signal(sig os.Signal) error {
	return p.cmd.Process.Signal(sig)
}

// Kill forcibly terminates the running process.
func (p *Proc) Kill() error {
	return p.cmd.Process.Kill()
}

// Wait waits for the process to exit and returns its Result. Exit errors are
// stored in the Result, not the error return, which only reports wait
// plumbing problems. Wait must be called exactly once.
func (p *Proc) Wait() (*Result, error) {
	if p.waited {
		return p.res, errors.New("shx: Proc already waited on")
	}
	p.waited = true
	p.res.exitErr = p.cmd.Wait()
	p.res.processState = p.cmd.ProcessState
	if err := p.res.doneWriting(); err != nil {
		p.res.exitErr = errors.Join(p.res.exitErr, err)
	}
	return p.res, nil
}
