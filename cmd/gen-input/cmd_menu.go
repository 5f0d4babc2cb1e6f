package main

import (
	"github.com/spf13/cobra"

	"github.com/vitorrios1001/stream-learning/internal/cli"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu for generating, inspecting, and removing the input file.`,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cli.NewContext()
	menu := cli.NewMenu(ctx)
	return menu.Show()
}
