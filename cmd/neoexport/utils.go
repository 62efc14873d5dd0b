package neoexport

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/neoexport/neoexport/internal/config"
	"github.com/neoexport/neoexport/internal/logging"
	"github.com/neoexport/neoexport/internal/report"
	"github.com/neoexport/neoexport/internal/types"
)

// loadConfigs returns the global and local file configs; missing files
// yield empty configs.
func loadConfigs() (gcfg, lcfg config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	abs, _ := filepath.Abs(".")
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}
	return gcfg, lcfg
}

func newLogger(w io.Writer, gcfg, lcfg config.FileConfig) (logr.Logger, error) {
	gl, ll := gcfg.GetLogConfig(), lcfg.GetLogConfig()
	level := flagLogLevel
	if level == "" {
		level = ll.GetLevel()
	}
	if level == "" {
		level = gl.GetLevel()
	}
	// a local json setting overrides the global one, even when false
	asJSON := flagLogJSON || ll.IsJSON() || (ll.JSON == nil && gl.IsJSON())
	return logging.New(w, logging.Options{
		Level:   level,
		JSON:    asJSON,
		NoColor: noColor(gcfg, lcfg),
	})
}

// noColor disables color when asked to or when stdout is not a terminal.
func noColor(gcfg, lcfg config.FileConfig) bool {
	if pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// readInputs streams the records of each path in turn. Files are read one
// at a time; the first read error stops the sequence and is stored in errp.
func readInputs(paths []string, log logr.Logger, errp *error) iter.Seq[types.CloseApproach] {
	return func(yield func(types.CloseApproach) bool) {
		for _, p := range paths {
			records, err := report.ReadFile(p)
			if err != nil {
				*errp = fmt.Errorf("read %s: %w", p, err)
				return
			}
			log.V(1).Info("input loaded", "path", p, "records", len(records))
			for _, ca := range records {
				if !yield(ca) {
					return
				}
			}
		}
	}
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
