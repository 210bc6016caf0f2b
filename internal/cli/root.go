package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	config string
	debug  bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "upperenv",
		Short:        "Assemble the upper envelope of a polygon mesh into a clean manifold mesh",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&g.config, "config", "c", "", "YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log every pipeline stage to stderr")

	cmd.AddCommand(assembleCmd(&g))
	cmd.AddCommand(checkCmd(&g))
	cmd.AddCommand(plotCmd(&g))
	return cmd
}
