package cmd

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"fastcat.org/go/jrun/config"
	"fastcat.org/go/jrun/instance"
)

func init() {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "manage " + instance.AppName + " configuration",
	}
	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  ConfigShow,
	})
	instance.AddCommands(cfg)
}

func ConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
