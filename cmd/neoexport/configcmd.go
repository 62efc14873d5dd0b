package neoexport

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neoexport/neoexport/internal/config"
	"github.com/neoexport/neoexport/internal/report"
)

var (
	cfgOutput       string
	cfgFormat       string
	cfgLF           bool
	cfgAudit        bool
	cfgMetricsFile  string
	cfgPreviewLimit int
	cfgLogLevel     string
	cfgLogJSON      bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .neoexport.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".neoexport.yml", "output file path")
	initCmd.Flags().StringVar(&cfgFormat, "format", "", "default output format csv|json (empty: from extension)")
	initCmd.Flags().BoolVar(&cfgLF, "lf", false, "terminate CSV rows with \\n instead of \\r\\n")
	initCmd.Flags().BoolVar(&cfgAudit, "audit", false, "record every export in the audit log")
	initCmd.Flags().StringVar(&cfgMetricsFile, "metrics-file", "", "Prometheus textfile written after each export")
	initCmd.Flags().IntVar(&cfgPreviewLimit, "preview-limit", 0, "rows shown by 'neoexport show'")
	initCmd.Flags().StringVar(&cfgLogLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	initCmd.Flags().BoolVar(&cfgLogJSON, "log-json", false, "emit logs as JSON lines")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if f := strings.TrimSpace(cfgFormat); f != "" {
		if _, err := report.ParseFormat(f); err != nil {
			return err
		}
	}

	fc := config.FileConfig{
		Format:       optStrPtr(cfgFormat),
		LF:           boolPtr(cfgLF),
		Audit:        boolPtr(cfgAudit),
		MetricsFile:  optStrPtr(cfgMetricsFile),
		PreviewLimit: intPtr(cfgPreviewLimit),
	}
	if lvl := optStrPtr(cfgLogLevel); lvl != nil || cfgLogJSON {
		fc.Log = &config.LogConfig{Level: lvl, JSON: boolPtr(cfgLogJSON)}
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
