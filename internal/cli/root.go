package cli

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/treeprune/internal/version"
	"github.com/arthur-debert/treeprune/pkg/cobrax/topics"
	"github.com/arthur-debert/treeprune/pkg/config"
	"github.com/arthur-debert/treeprune/pkg/core"
	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/logging"
	"github.com/arthur-debert/treeprune/pkg/types"
	"github.com/arthur-debert/treeprune/pkg/ui"
	"github.com/arthur-debert/treeprune/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

type rootFlags struct {
	verbosity     int
	configFile    string
	specFile      string
	rootDir       string
	class         string
	ignoreMissing []string
	dryRun        bool
	displayLimit  int
	format        string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	f := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "treeprune",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(f.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, f)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringVar(&f.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&f.specFile, "spec-file", "", MsgFlagSpecFile)
	flags.StringVar(&f.rootDir, "root-dir", "", MsgFlagRootDir)
	flags.StringVar(&f.class, "class", "", MsgFlagClass)
	flags.StringArrayVar(&f.ignoreMissing, "ignore-missing-from-class", nil, MsgFlagIgnoreMissing)
	flags.BoolVar(&f.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.IntVar(&f.displayLimit, "display-limit", 10, MsgFlagDisplayLimit)
	flags.StringVar(&f.format, "format", "auto", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if _, err := topics.Initialize(rootCmd, docsFS(), topics.Options{Renderer: docsRenderer()}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs the command line and reports errors that were not already
// rendered. The returned error keeps its code for ExitCode.
func Execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var shown *reportedError
	if !stderrors.As(err, &shown) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// reportedError marks an error the renderer already printed
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// ExitCode maps a run outcome to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsErrorCode(err, errors.ErrPathEscape):
		return 2
	default:
		return 1
	}
}

// overrides collects the flags the user actually set, keyed like the
// config file, so unset flags never shadow file or environment values.
func overrides(cmd *cobra.Command, f *rootFlags) map[string]interface{} {
	set := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("spec-file") {
		set[config.KeySpecFile] = f.specFile
	}
	if flags.Changed("root-dir") {
		set[config.KeyRootDir] = f.rootDir
	}
	if flags.Changed("class") {
		set[config.KeyClass] = f.class
	}
	if flags.Changed("ignore-missing-from-class") {
		set[config.KeyIgnoreMissing] = f.ignoreMissing
	}
	if flags.Changed("dry-run") {
		set[config.KeyDryRun] = f.dryRun
	}
	if flags.Changed("display-limit") {
		set[config.KeyDisplayLimit] = f.displayLimit
	}
	if flags.Changed("format") {
		set[config.KeyFormat] = f.format
	}
	return set
}

func runPrune(cmd *cobra.Command, f *rootFlags) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		Overrides:  overrides(cmd, f),
	})
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	renderer, err := ui.NewRenderer(format, stdout, stderr)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}

	if err := cfg.Validate(); err != nil {
		return report(renderer, display.Report{Err: err, DisplayLimit: cfg.DisplayLimit})
	}

	ignore := make([]types.Class, 0, len(cfg.IgnoreMissing))
	for _, c := range cfg.IgnoreMissing {
		ignore = append(ignore, types.Class(c))
	}

	result, runErr := core.Reconcile(core.Options{
		SpecFile:      cfg.SpecFile,
		RootDir:       cfg.RootDir,
		Class:         types.Class(cfg.Class),
		IgnoreMissing: ignore,
		DryRun:        cfg.DryRun,
	})
	if runErr != nil {
		log.Debug().Err(runErr).Str("code", string(errors.GetErrorCode(runErr))).Msg("Reconciliation failed")
	}

	return report(renderer, display.Report{Result: result, Err: runErr, DisplayLimit: cfg.DisplayLimit})
}

// report renders the outcome and returns its error marked as shown
func report(renderer ui.Renderer, r display.Report) error {
	if err := renderer.Render(r); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write output")
	}
	if r.Err != nil {
		return &reportedError{err: r.Err}
	}
	return nil
}

func docsFS() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return topicsFS
	}
	return sub
}

func docsRenderer() topics.Renderer {
	if stdoutIsTerminal() {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}
