package cli

import (
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for lastword.

To load completions:

Bash:
  $ source <(lastword completion bash)

Zsh:
  $ lastword completion zsh > "${fpath[1]}/_lastword"

Fish:
  $ lastword completion fish | source

PowerShell:
  PS> lastword completion powershell | Out-String | Invoke-Expression

"lastword words <TAB>" completes dictionary words.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(w, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(w)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(completionCmd)
}
