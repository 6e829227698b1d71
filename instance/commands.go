package instance

import "github.com/spf13/cobra"

var commands []*cobra.Command

// AddCommands registers subcommands for the root command. Call it from init
// functions, or from main before cmd.Main; registration order is display
// order.
func AddCommands(cmds ...*cobra.Command) {
	commands = append(commands, cmds...)
}

// Commands returns the registered subcommands, for cmd.Root to attach.
func Commands() []*cobra.Command {
	return commands
}
