package neoexport

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagLogJSON  bool
	flagNoColor  bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the neoexport CLI.
var rootCmd = &cobra.Command{
	Use:           "neoexport",
	Short:         "Export near-earth object close approaches to CSV or JSON",
	Long:          "neoexport writes close-approach records as CSV rows or a JSON document, converts between the two, and previews them as tables.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the neoexport CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace|debug|info|warn|error (default info)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "emit logs as JSON lines")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
