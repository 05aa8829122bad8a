package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits in counts and plain numbers
var printer = message.NewPrinter(language.English)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "idlectl",
		Short: "Idle Animal Kingdom economy tools",
		Long: `Headless tools for the Idle Animal Kingdom economy: fast-forward a
greedy run, inspect or migrate save files, quote prices and manage the
postgres save schema.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newInspectCmd(),
		newMigrateCmd(),
		newPriceCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

func printTitle(cmd *cobra.Command, title string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", title)
}
