package neoexport

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionWriters maps a shell name to its script generator.
var completionWriters = map[string]func(*cobra.Command, io.Writer) error{
	"bash":       func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

func init() {
	shells := slices.Sorted(maps.Keys(completionWriters))
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion <shell>",
		Short:     "Print a shell completion script (" + strings.Join(shells, "|") + ")",
		ValidArgs: shells,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionWriters[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
		Example: `
neoexport completion bash > /etc/bash_completion.d/neoexport
neoexport completion zsh > "${fpath[1]}/_neoexport"`,
	})
}
