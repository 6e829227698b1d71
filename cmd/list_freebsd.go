package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/jrun/instance"
	"fastcat.org/go/jrun/jail"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list running jails",
		Args:    cobra.NoArgs,
		RunE:    JailList,
	})
}

func JailList(cmd *cobra.Command, _ []string) error {
	jails, err := jail.List()
	if err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleColoredBlueWhiteOnBlack)
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"JID", "Name", "Path", "Hostname"})
	tw.AppendSeparator()
	for _, j := range jails {
		tw.AppendRow(table.Row{j.JID, j.Name, j.Path, j.Hostname})
	}
	tw.Render()
	return nil
}
