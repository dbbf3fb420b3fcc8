package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/treeprune/internal/version"
	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// newFormatCmd prints the spec-format help topic
func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: MsgFormatShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := fs.ReadFile(docsFS(), "spec-format.md")
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "spec format reference missing")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), docsRenderer().Render(string(content), ".md"))
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "cannot create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "TREEPRUNE",
				Section: "1",
				Source:  "treeprune " + version.Version,
				Manual:  "treeprune manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate man pages")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "man pages written to %s\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
