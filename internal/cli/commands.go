package cli

import (
	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for kycmon.

Examples:
  # Bash
  kycmon completion bash > /etc/bash_completion.d/kycmon

  # Zsh
  kycmon completion zsh > "${fpath[1]}/_kycmon"

  # Fish
  kycmon completion fish > ~/.config/fish/completions/kycmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.Root(), cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// writeCompletion writes root's completion script for shell to cmd's output.
func writeCompletion(root, cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return root.GenBashCompletion(out)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return errors.New(errors.ErrConfig,
			"Unknown shell: "+shell,
			"Supported shells: bash, zsh, fish, powershell")
	}
}
