package main

import (
	"github.com/spf13/cobra"

	"github.com/vitorrios1001/stream-learning/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show input file status",
	Long:  `Display whether the input file exists, its size against the planned size, and free disk space. Does not modify anything.`,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx := cli.NewContext()
	return ctx.ShowStatus()
}
