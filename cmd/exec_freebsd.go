package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fastcat.org/go/jrun/config"
	"fastcat.org/go/jrun/instance"
	"fastcat.org/go/jrun/jail"
	"fastcat.org/go/jrun/shx"
)

func init() {
	var jailSpec string
	exe := &cobra.Command{
		Use:   "exec [-j jail] command [args...]",
		Short: "run a command inside a running jail",
		Long: "Runs a command inside a running jail, with stdio passed through " +
			"and the child's exit code relayed.\n" +
			"The jail may be named by name or JID; with no -j, the configured " +
			"default-jail is used. If the command matches a configured alias, " +
			"it is expanded first.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExecInJail(cmd, jailSpec, args)
		},
	}
	exe.Flags().StringVarP(&jailSpec, "jail", "j", "",
		"jail name or JID (defaults to the configured default-jail)")
	instance.AddCommands(exe)
}

func ExecInJail(cmd *cobra.Command, jailSpec string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if jailSpec == "" {
		jailSpec = cfg.DefaultJail
	}
	if jailSpec == "" {
		return fmt.Errorf("no jail named and no default-jail configured")
	}
	j, err := jail.Resolve(jailSpec)
	if err != nil {
		return err
	}
	args = expandAlias(cfg, args)

	c := shx.New(args[0], args[1:]...).With(shx.PassStdio(), shx.WithJail(j))
	for k, v := range cfg.Env {
		c.With(shx.WithEnv(k, v))
	}
	res, err := c.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to start %s in %v: %w", args[0], j, err)
	}
	if code := res.ExitCode(); code != 0 {
		return exitCodeError{code}
	}
	return nil
}

// expandAlias substitutes a configured alias for the command word, keeping
// any extra arguments.
func expandAlias(cfg *config.Config, args []string) []string {
	alias, ok := cfg.Aliases[args[0]]
	if !ok {
		return args
	}
	return append(append([]string{}, alias...), args[1:]...)
}
