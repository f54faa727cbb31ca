package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the API server.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "board-chatbot",
		Short:         "Chat middleware that turns questions into board searches",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (YAML, TOML or JSON); env vars override it")

	root.AddCommand(
		newServeCmd(&configFile),
		newAskCmd(&configFile),
		newPostCmd(&configFile),
		newQueriesCmd(&configFile),
	)
	return root
}
