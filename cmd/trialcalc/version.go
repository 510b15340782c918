package main

import "github.com/spf13/cobra"

// Set with -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", Version, GitCommit)
		},
	}
}
