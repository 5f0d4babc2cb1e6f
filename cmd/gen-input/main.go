package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitorrios1001/stream-learning/internal/cli"
	"github.com/vitorrios1001/stream-learning/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "gen-input",
	Short: "Generate the large text input file for the stream exercises",
	Long: `Generates large-input.txt in the current directory: a fixed line of
text repeated until the file reaches roughly 10 GB. The stream-processing
exercises in this repository read that file as their input.

Run without arguments to generate the file. An existing file is overwritten.
Use 'status' to inspect the file without touching it, or 'menu' for an
interactive interface.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cli.NewContext()
	return ctx.Generate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
