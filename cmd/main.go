// Package cmd assembles the jrun command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Main() {
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

// ExitCodeErr lets an error pick the process exit code Main ends with.
type ExitCodeErr interface {
	ExitCode() int
}

// exitCodeError relays a child's exit code through the error return.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}

func (e exitCodeError) ExitCode() int {
	return e.code
}
