package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the gatekeep CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatekeep",
		Short: "gatekeep - session authenticated API",
		Long: `gatekeep serves signup, signin, password reset and a protected
order listing over JSON, backed by MongoDB.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}
