package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fastcat.org/go/jrun/instance"
)

func Root() *cobra.Command {
	var longDesc strings.Builder
	fmt.Fprintf(&longDesc, "%s runs commands inside running FreeBSD jails.\n", instance.AppName)
	fmt.Fprintf(&longDesc, "Version %s\n", instance.Version())

	root := &cobra.Command{
		Use:           instance.AppName,
		Short:         "run commands inside FreeBSD jails",
		Long:          longDesc.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
	}
	root.AddCommand(instance.Commands()...)
	return root
}
