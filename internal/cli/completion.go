package cli

import (
	"github.com/spf13/cobra"
)

// completionShells lists the shells cobra can generate completions for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a shell completion script for colorbars.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell.

  bash:        source <(colorbars completion bash)
  zsh:         colorbars completion zsh > "${fpath[1]}/_colorbars"
  fish:        colorbars completion fish | source
  powershell:  colorbars completion powershell | Out-String | Invoke-Expression

Completions cover subcommands, flags, and the values of --format and
--strategy.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return root.GenBashCompletionV2(out, true)
			}
		},
	}
}
