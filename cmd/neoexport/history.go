package neoexport

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/neoexport/neoexport/internal/audit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List exports recorded in the audit log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(".")
			records, err := audit.NewAuditLog(abs).LoadHistory()
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return audit.PrintHistory(cmd.OutOrStdout(), records)
		},
	}

	rm := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove an entry (index as shown by 'neoexport history')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			abs, _ := filepath.Abs(".")
			if err := audit.NewAuditLog(abs).DeleteRecord(idx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed entry", idx)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(rm)
}
