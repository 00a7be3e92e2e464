package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/krunkertools/bindsync/internal/cli"
	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/history"
	"github.com/krunkertools/bindsync/internal/tui"
	"github.com/krunkertools/bindsync/internal/web"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bindsync",
	Short: "bindsync - Krunker keybinding transfer tool",
	Long: `bindsync moves the controls section between Krunker settings exports.

Run without arguments to start the interactive TUI. Subcommands cover the
same operations for scripting: extract pulls the controls block out of a
settings document, merge rewrites another document's controls while leaving
every other setting untouched.

File arguments accept '-' for stdin; results print to stdout unless -s or
--copy redirect them.

Examples:
  bindsync                                   # Start interactive TUI
  bindsync extract settings.json             # Print controls-only document
  bindsync extract settings.json -s keys.json
  bindsync merge --source keys.json --target mine.json
  bindsync validate settings.json            # Parse check with diagnostics
  bindsync inspect settings.json -q 'controls.forward'
  bindsync web --open                        # Browser front end
  bindsync --help                            # Show help`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the controls section from a settings document",
	Long: `Extract reads one settings export and prints a document holding only
its controls section. The output merges cleanly into any other settings
document.

Reads stdin when no file is given (or the file is '-').`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		opts := cli.ExtractOptions{
			CommonOptions: commonOpts(),
			FromClipboard: flagFromClipboard,
		}
		if len(args) > 0 {
			opts.FilePath = args[0]
		}
		return cli.Extract(opts)
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge controls from a source document into a target document",
	Long: `Merge takes the controls section of the source document and writes it
into the target document, replacing the target's controls and leaving all
its other settings exactly as they were. Field order is preserved.

One of source and target may be '-' for stdin, not both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Merge(cli.MergeOptions{
			CommonOptions:       commonOpts(),
			SourcePath:          flagSource,
			TargetPath:          flagTarget,
			SourceFromClipboard: flagSourceClipboard,
			TargetFromClipboard: flagTargetClipboard,
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a settings document parses",
	Long: `Validate parses the document and pretty-prints it on success. Parse
failures report the line and column of the first error and exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		opts := cli.ValidateOptions{
			FromClipboard: flagFromClipboard,
			Lenient:       flagLenient,
			Quiet:         flagQuiet,
			NoHistory:     flagNoHistory,
		}
		if len(args) > 0 {
			opts.FilePath = args[0]
		}
		return cli.Validate(opts)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize a settings document or query it with JMESPath",
	Long: `Inspect prints a summary of the document (kind, top-level keys,
controls binding count) as JSON or YAML. With -q it instead evaluates a
JMESPath expression against the document.

Examples:
  bindsync inspect settings.json
  bindsync inspect settings.json -o yaml
  bindsync inspect settings.json -q 'controls.forward'
  bindsync inspect settings.json -q 'keys(controls)'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.InspectOptions{
			FromClipboard: flagFromClipboard,
			Lenient:       flagLenient,
			Query:         flagQuery,
			OutputFormat:  flagOutputFormat,
		}
		if len(args) > 0 {
			opts.FilePath = args[0]
		}
		return cli.Inspect(opts)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.History(cli.HistoryOptions{Limit: flagHistoryLimit})
	},
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser front end on localhost",
	Long: `Web starts a local HTTP server with a browser UI for the same extract
and merge operations. The server binds to localhost only and stops on
Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		// History is best effort for the web front end too
		var hist *history.Manager
		if config.LoadPrefs().HistoryEnabled {
			var err error
			hist, err = history.NewManager(config.DatabasePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
				hist = nil
			}
		}
		if hist != nil {
			defer hist.Close()
		}

		srv := web.NewServer(flagListenAddr, hist)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Serving on %s (Ctrl-C to stop)\n", srv.URL())
		if flagOpenBrowser {
			if err := browser.OpenURL(srv.URL()); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not open browser: %v\n", err)
			}
		}

		return srv.ListenAndServe(ctx)
	},
}

// Flags shared by extract and merge
var (
	flagSavePath    string
	flagToClipboard bool
	flagMinify      bool
	flagLenient     bool
	flagNoHistory   bool
)

// Per-command flags
var (
	flagFromClipboard   bool
	flagSource          string
	flagTarget          string
	flagSourceClipboard bool
	flagTargetClipboard bool
	flagQuiet           bool
	flagQuery           string
	flagOutputFormat    string
	flagHistoryLimit    int
	flagListenAddr      string
	flagOpenBrowser     bool
)

func commonOpts() cli.CommonOptions {
	return cli.CommonOptions{
		SavePath:    flagSavePath,
		ToClipboard: flagToClipboard,
		Minify:      flagMinify,
		Lenient:     flagLenient,
		NoHistory:   flagNoHistory,
	}
}

func init() {
	for _, cmd := range []*cobra.Command{extractCmd, mergeCmd} {
		cmd.Flags().StringVarP(&flagSavePath, "save", "s", "", "Write the result to a file instead of stdout")
		cmd.Flags().BoolVar(&flagToClipboard, "copy", false, "Copy the result to the clipboard")
		cmd.Flags().BoolVar(&flagMinify, "minify", false, "Minified output instead of pretty-printed")
	}

	for _, cmd := range []*cobra.Command{extractCmd, mergeCmd, validateCmd} {
		cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Skip the operation log")
	}

	for _, cmd := range []*cobra.Command{extractCmd, mergeCmd, validateCmd, inspectCmd} {
		cmd.Flags().BoolVar(&flagLenient, "lenient", false, "Allow comments and trailing commas in input")
	}

	for _, cmd := range []*cobra.Command{extractCmd, validateCmd, inspectCmd} {
		cmd.Flags().BoolVar(&flagFromClipboard, "clipboard", false, "Read the document from the clipboard")
	}

	mergeCmd.Flags().StringVar(&flagSource, "source", "", "Settings document supplying the controls ('-' for stdin)")
	mergeCmd.Flags().StringVar(&flagTarget, "target", "", "Settings document to rewrite ('-' for stdin)")
	mergeCmd.Flags().BoolVar(&flagSourceClipboard, "source-clipboard", false, "Read the source from the clipboard")
	mergeCmd.Flags().BoolVar(&flagTargetClipboard, "target-clipboard", false, "Read the target from the clipboard")

	validateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress the pretty-printed document")

	inspectCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression to evaluate")
	inspectCmd.Flags().StringVarP(&flagOutputFormat, "output", "o", "json", "Report format: json or yaml")

	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum entries to list")

	webCmd.Flags().StringVar(&flagListenAddr, "addr", "", "Listen address (default 127.0.0.1:8790)")
	webCmd.Flags().BoolVar(&flagOpenBrowser, "open", false, "Open the UI in the default browser")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(webCmd)
}
