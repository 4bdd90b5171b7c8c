// Package cli wires the cliwizard commands: generate, bootstrap and the
// persisted configuration surface.
package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "cliwizard",
		Short:   "Generate a complete CLI project from an OpenAPI specification",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		GenerateCommand(),
		BootstrapCommand(),
		ConfigCommand(),
	)

	return root
}
