// Command ionsym is a small inspection tool for the symbol-table subsystem:
// it dumps the built-in system table, reports whether a symbol needs
// quoting, and parses Ion version markers. It exists to exercise the
// package from the outside, not as a full Ion command-line tool — the
// binary/text codec itself is out of scope.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-ion/ion-symtab"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ionsym",
	Short:         "Inspect Ion symbol tables",
	Long:          "ionsym inspects the well-known Ion system table and checks symbol-text syntax rules.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionMarkerCmd)
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Print the Ion v1.0 system table",
	Args:  cobra.NoArgs,
	RunE:  runSystem,
}

func runSystem(cmd *cobra.Command, args []string) error {
	sys, err := ion.SystemTable(1)
	if err != nil {
		return fmt.Errorf("loading system table: %w", err)
	}
	for _, sym := range sys.Symbols() {
		text := "?"
		if sym.Text != nil {
			text = *sym.Text
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sym.SID, text)
	}
	return nil
}

var quoteCmd = &cobra.Command{
	Use:   "quote <text>",
	Short: "Report whether a symbol must be quoted when written as identifier syntax",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

func runQuote(cmd *cobra.Command, args []string) error {
	text := args[0]
	if ion.NeedsQuoting(text) {
		fmt.Fprintf(cmd.OutOrStdout(), "'%s'\n", text)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

var versionMarkerCmd = &cobra.Command{
	Use:   "version-marker <text>",
	Short: "Parse an Ion version marker ($ion_<major>_<minor>)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVersionMarker,
}

func runVersionMarker(cmd *cobra.Command, args []string) error {
	major, minor, ok := ion.ParseVersionMarker(args[0])
	if !ok {
		return fmt.Errorf("%q is not a version marker", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(major)+"."+strconv.Itoa(minor))
	return nil
}
