package neoexport

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neoexport/neoexport/internal/audit"
	"github.com/neoexport/neoexport/internal/files"
	"github.com/neoexport/neoexport/internal/metrics"
	"github.com/neoexport/neoexport/internal/report"
)

var (
	flagOutput      string
	flagFormat      string
	flagLF          bool
	flagAudit       bool
	flagMetricsFile string
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert <input>... -o <output>",
		Short: "Write close approaches from CSV/JSON inputs to a CSV or JSON file",
		Long: `Reads every input in order (globs such as data/**/*.json are expanded)
and writes the combined close approaches to the output file. The output
format follows the output extension unless --format is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
		Example: `
# JSON document to CSV rows
neoexport convert approaches.json -o approaches.csv

# merge yearly CSV files into one document
neoexport convert 'data/**/*.csv' -o all.json --audit`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (.csv or .json)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format csv|json (default: from output extension)")
	cmd.Flags().BoolVar(&flagLF, "lf", false, "terminate CSV rows with \\n instead of \\r\\n")
	cmd.Flags().BoolVar(&flagAudit, "audit", false, "append the export to the local audit log")
	cmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the export")
	_ = cmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	gcfg, lcfg := loadConfigs()
	log, err := newLogger(cmd.ErrOrStderr(), gcfg, lcfg)
	if err != nil {
		return err
	}

	inputs, err := files.Expand(args)
	if err != nil {
		return err
	}
	if err := checkNotInput(flagOutput, inputs); err != nil {
		return err
	}

	var format report.Format
	if s := pickString(flagFormat, lcfg.Format, gcfg.Format); s != "" {
		if format, err = report.ParseFormat(s); err != nil {
			return err
		}
	}
	var readErr error
	opts := report.Options{
		CSV:       report.CSVOptions{UseLF: pickBool(flagLF, lcfg.LF, gcfg.LF)},
		Log:       log,
		SourceErr: func() error { return readErr },
	}
	// a CSV output keeps the rows read before a failing input; a JSON output
	// is left as it was
	sum, err := report.Export(flagOutput, format, readInputs(inputs, log, &readErr), opts)
	metrics.ObserveExport(string(sum.Format), sum.Records, sum.Bytes, sum.Duration.Seconds(), err)

	if path := pickString(flagMetricsFile, lcfg.MetricsFile, gcfg.MetricsFile); path != "" {
		if merr := metrics.WriteTextfile(path); merr != nil {
			log.Error(merr, "metrics textfile not written", "path", path)
		}
	}
	if err != nil {
		return err
	}

	if pickBool(flagAudit, lcfg.Audit, gcfg.Audit) {
		abs, _ := filepath.Abs(".")
		if aerr := audit.NewAuditLog(abs).LogExport(audit.CreateExportRecord(sum, inputs)); aerr != nil {
			log.Error(aerr, "audit log not updated")
		}
	}

	log.Info("export complete", "output", sum.Path, "format", sum.Format, "records", sum.Records, "bytes", sum.Bytes, "duration", sum.Duration)
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d close approaches to %s (%s)\n", sum.Records, sum.Path, sum.Format)
	return nil
}

var errOutputIsInput = errors.New("output file is also an input")

// checkNotInput refuses to truncate a file that is about to be read.
func checkNotInput(output string, inputs []string) error {
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		if abs, err := filepath.Abs(in); err == nil && abs == out {
			return fmt.Errorf("%w: %s", errOutputIsInput, output)
		}
	}
	return nil
}
