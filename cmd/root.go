package cmd

import (
	"io"
	"log"
	"os"

	"ctxbundle/pkg/bundle"
	"ctxbundle/pkg/logging"
	"ctxbundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "ctxbundle"

// NewRootCmd builds the root command. Without flags it bundles src/**/*.rs
// as rust blocks, matching the original script.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := bundle.DefaultOptions()
	var debug bool

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Bundle a source tree into one fenced-block context document",
		Long: `ctxbundle collects every file matching a glob pattern under a root directory,
sorts them by path, wraps each one in a fenced code block labeled with its path,
and prints the combined document to stdout, ready to paste into an LLM prompt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(debug, appName, version.Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Progress = cmd.ErrOrStderr()
			logging.Logger.Debug("Resolved options",
				zap.String("root", opts.Root),
				zap.String("pattern", opts.Pattern),
				zap.String("language", opts.Language),
				zap.Bool("verbose", opts.Verbose),
				zap.Strings("exclude", opts.Exclude),
				zap.Bool("tree", opts.Tree),
				zap.Bool("hidden", opts.Hidden))
			return bundle.Run(opts, cmd.OutOrStdout(), logging.Logger)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Root, "root", "r", opts.Root, "Directory to search recursively")
	flags.StringVarP(&opts.Pattern, "pattern", "p", opts.Pattern, "Glob pattern relative to the root ('**' matches any depth)")
	flags.StringVarP(&opts.Language, "lang", "l", opts.Language, "Language tag written on each opening fence")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print \"Reading <path>\" to stderr before each file")
	flags.StringArrayVarP(&opts.Exclude, "exclude", "x", nil, "Gitignore-style pattern to leave out (repeatable)")
	flags.StringVar(&opts.ExcludeFile, "exclude-from", "", "File of gitignore-style patterns to leave out")
	flags.BoolVar(&opts.Tree, "tree", false, "Prepend a tree listing of the bundled files")
	flags.BoolVar(&opts.Hidden, "hidden", false, "Also match files and directories whose names start with '.'")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command against the process's stdout and stderr.
// A failure is logged once here; cobra's own error printing is silenced.
func Execute() error {
	if err := logging.Setup(false, appName, version.Version); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return err
	}

	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logging.Logger.Error("ctxbundle execution failed", zap.Error(err))
		return err
	}
	return nil
}
