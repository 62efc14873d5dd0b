package neoexport

import (
	"github.com/spf13/cobra"

	"github.com/neoexport/neoexport/internal/files"
	"github.com/neoexport/neoexport/internal/report"
)

const defaultPreviewLimit = 20

var (
	flagLimit int
	flagAll   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <input>...",
		Short: "Preview close approaches as a table",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "rows to display (default 20)")
	cmd.Flags().BoolVar(&flagAll, "all", false, "display every row")
}

func runShow(cmd *cobra.Command, args []string) error {
	gcfg, lcfg := loadConfigs()
	log, err := newLogger(cmd.ErrOrStderr(), gcfg, lcfg)
	if err != nil {
		return err
	}
	inputs, err := files.Expand(args)
	if err != nil {
		return err
	}

	limit := pickInt(flagLimit, lcfg.PreviewLimit, gcfg.PreviewLimit)
	if limit <= 0 {
		limit = defaultPreviewLimit
	}
	if flagAll {
		limit = 0
	}

	var readErr error
	err = report.PrintTable(cmd.OutOrStdout(), readInputs(inputs, log, &readErr), report.TableOptions{
		Limit:   limit,
		NoColor: noColor(gcfg, lcfg),
	})
	if err != nil {
		return err
	}
	return readErr
}
