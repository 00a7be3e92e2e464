// Package cli implements the scriptable front end: extract, merge,
// validate, inspect and history subcommands over the settings core.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/history"
	"github.com/krunkertools/bindsync/internal/settings"
)

// CommonOptions are the flags shared by extract and merge.
type CommonOptions struct {
	SavePath    string // -s: write result to file
	ToClipboard bool   // --copy: write result to clipboard
	Minify      bool   // --minify: minified instead of pretty output
	Lenient     bool   // --lenient: strip comments/trailing commas first
	NoHistory   bool   // --no-history: skip the operation log
}

// ExtractOptions configures the extract command.
type ExtractOptions struct {
	CommonOptions
	FilePath      string // positional arg; "" or "-" means stdin
	FromClipboard bool   // --clipboard: read source from clipboard
}

// MergeOptions configures the merge command.
type MergeOptions struct {
	CommonOptions
	SourcePath        string
	TargetPath        string
	SourceFromClipboard bool
	TargetFromClipboard bool
}

// load picks the strict or lenient parser. Strict is the default; lenient
// is only reachable through the explicit flag.
func load(text string, lenient bool) (settings.Value, error) {
	if lenient {
		return settings.LoadLenient(text)
	}
	return settings.Load(text)
}

// extractText runs the extract operation on raw text and renders the
// result. It returns the source's top-level field count for the operation
// log.
func extractText(text string, lenient, minify bool) (string, int, error) {
	doc, err := load(text, lenient)
	if err != nil {
		return "", 0, err
	}

	out, err := settings.ExtractControls(doc)
	if err != nil {
		return "", doc.Len(), err
	}

	rendered, err := settings.Stringify(out, !minify)
	if err != nil {
		return "", doc.Len(), err
	}
	return rendered, doc.Len(), nil
}

// mergeText runs the merge operation on raw text and renders the result.
func mergeText(sourceText, targetText string, lenient, minify bool) (result string, sourceFields, targetFields int, err error) {
	source, err := load(sourceText, lenient)
	if err != nil {
		return "", 0, 0, fmt.Errorf("source: %w", err)
	}
	target, err := load(targetText, lenient)
	if err != nil {
		return "", source.Len(), 0, fmt.Errorf("target: %w", err)
	}

	merged, err := settings.MergeControls(source, target)
	if err != nil {
		return "", source.Len(), target.Len(), err
	}

	rendered, err := settings.Stringify(merged, !minify)
	if err != nil {
		return "", source.Len(), target.Len(), err
	}
	return rendered, source.Len(), target.Len(), nil
}

// Extract reads one settings document and prints its controls-only form.
func Extract(opts ExtractOptions) error {
	text, err := readInput(opts.FilePath, opts.FromClipboard)
	if err != nil {
		return err
	}

	result, sourceFields, err := extractText(text, opts.Lenient, opts.Minify)
	recordOp(history.Entry{
		Operation:    history.OpExtract,
		Frontend:     "cli",
		SourceFields: sourceFields,
		Result:       result,
	}, err, opts.NoHistory)
	if err != nil {
		return err
	}

	return writeOutput(result, opts.SavePath, opts.ToClipboard)
}

// Merge replaces the target document's controls with the source's.
func Merge(opts MergeOptions) error {
	if opts.SourcePath == "" && !opts.SourceFromClipboard {
		return errors.New("no source given (use --source or --source-clipboard)")
	}
	if opts.TargetPath == "" && !opts.TargetFromClipboard {
		return errors.New("no target given (use --target or --target-clipboard)")
	}
	if opts.SourcePath == "-" && opts.TargetPath == "-" {
		return errors.New("source and target cannot both be stdin")
	}

	sourceText, err := readInput(opts.SourcePath, opts.SourceFromClipboard)
	if err != nil {
		return err
	}
	targetText, err := readInput(opts.TargetPath, opts.TargetFromClipboard)
	if err != nil {
		return err
	}

	result, sourceFields, targetFields, err := mergeText(sourceText, targetText, opts.Lenient, opts.Minify)
	recordOp(history.Entry{
		Operation:    history.OpMerge,
		Frontend:     "cli",
		SourceFields: sourceFields,
		TargetFields: targetFields,
		Result:       result,
	}, err, opts.NoHistory)
	if err != nil {
		return err
	}

	return writeOutput(result, opts.SavePath, opts.ToClipboard)
}

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	FilePath      string
	FromClipboard bool
	Lenient       bool
	Quiet         bool // suppress the pretty-printed document
	NoHistory     bool // --no-history: skip the operation log
}

// Validate parses a document and pretty-prints it on success. On failure
// the parse diagnostic (with line/column) goes to stderr and the error
// propagates for a non-zero exit.
func Validate(opts ValidateOptions) error {
	text, err := readInput(opts.FilePath, opts.FromClipboard)
	if err != nil {
		return err
	}

	doc, err := load(text, opts.Lenient)
	sourceFields := 0
	if err == nil {
		sourceFields = doc.Len()
	}
	recordOp(history.Entry{
		Operation:    history.OpValidate,
		Frontend:     "cli",
		SourceFields: sourceFields,
	}, err, opts.NoHistory)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		pretty, err := settings.Stringify(doc, true)
		if err != nil {
			return err
		}
		fmt.Println(pretty)
	}
	fmt.Fprintln(os.Stderr, "Valid JSON")
	return nil
}

// HistoryOptions configures the history command.
type HistoryOptions struct {
	Limit int
}

// History lists recent operations from the local database.
func History(opts HistoryOptions) error {
	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()

	entries, err := mgr.List(opts.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No history recorded yet")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if e.Error != "" {
			status = "error: " + e.Error
		}
		fmt.Printf("%s  %-8s %-4s src=%d tgt=%d  %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Operation, e.Frontend, e.SourceFields, e.TargetFields, status)
	}
	return nil
}

// recordOp logs one operation, best-effort. A history failure never breaks
// the actual operation.
func recordOp(entry history.Entry, opErr error, disabled bool) {
	if disabled || !config.LoadPrefs().HistoryEnabled {
		return
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer mgr.Close()

	if err := mgr.Save(entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
	}
}
