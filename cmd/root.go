// Package cmd provides the root command and CLI setup for paramfix.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/paramfix/internal/adapter"
	"github.com/mouse-blink/paramfix/internal/config"
	"github.com/mouse-blink/paramfix/internal/controller"
	"github.com/mouse-blink/paramfix/internal/debug"
	"github.com/mouse-blink/paramfix/internal/domain"
	m "github.com/mouse-blink/paramfix/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var syntaxChecker adapter.SyntaxChecker
var rewriter domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

// settings is resolved by the root command's PersistentPreRunE.
var settings *config.Config

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	syntaxChecker = adapter.NewTypeScriptChecker()
	rewriter = domain.NewRewriter(syntaxChecker)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		reportStore,
		ui,
		rewriter,
	)
}

var configFlag string
var verboseFlag bool
var dryRunFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "paramfix [root]",
		Short:         "Await promise-typed route params in route handlers",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			debug.Init(cmd.ErrOrStderr(), verboseFlag)

			cfg, err := config.NewLoader(configFlag, cmd.Flags()).Load()
			if err != nil {
				return err
			}

			settings = cfg

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Per-file failures are reported by the UI and do not change the
			// exit status.
			_, err := workflow.Fix(domain.FixArgs{
				DiscoverArgs: discoverArgs(args),
				Indent:       settings.Indent,
				DryRun:       dryRunFlag,
				Verify:       settings.Verify,
				Parallel:     settings.Parallel,
				Report:       m.Path(settings.Report),
			})

			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is ./.paramfix.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringP("filename", "f", config.Default().Filename, "name of the route files to rewrite")
	cmd.PersistentFlags().StringArrayP("exclude", "x", nil, "skip paths matching glob, relative to root (can be repeated)")

	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "print a diff instead of writing files")
	cmd.Flags().IntP("parallel", "p", config.Default().Parallel, "number of files rewritten concurrently")
	cmd.Flags().Bool("verify", false, "reject rewrites that introduce TypeScript syntax errors")
	cmd.Flags().String("report", "", "write a YAML run report to this path")
	cmd.Flags().String("indent", config.Default().Indent, "indentation added when a handler body is empty")

	return cmd
}

// discoverArgs combines the resolved settings with an optional root argument.
func discoverArgs(args []string) domain.DiscoverArgs {
	root := settings.Root
	if len(args) > 0 {
		root = args[0]
	}

	return domain.DiscoverArgs{
		Root:     m.Path(root),
		Filename: settings.Filename,
		Exclude:  settings.Exclude,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
