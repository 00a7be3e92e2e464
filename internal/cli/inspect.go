package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"github.com/krunkertools/bindsync/internal/settings"
	"gopkg.in/yaml.v3"
)

// InspectOptions configures the inspect command.
type InspectOptions struct {
	FilePath      string
	FromClipboard bool
	Lenient       bool
	Query         string // JMESPath expression; empty means summary report
	OutputFormat  string // json (default) or yaml
}

// Summary describes a settings document at a glance.
type Summary struct {
	Kind             string   `json:"kind" yaml:"kind"`
	Fields           int      `json:"fields" yaml:"fields"`
	TopLevelKeys     []string `json:"topLevelKeys,omitempty" yaml:"topLevelKeys,omitempty"`
	HasControls      bool     `json:"hasControls" yaml:"hasControls"`
	ControlsKind     string   `json:"controlsKind,omitempty" yaml:"controlsKind,omitempty"`
	ControlsBindings int      `json:"controlsBindings" yaml:"controlsBindings"`
}

// Inspect prints a document summary, or the result of a JMESPath query
// against the document, as JSON or YAML.
func Inspect(opts InspectOptions) error {
	text, err := readInput(opts.FilePath, opts.FromClipboard)
	if err != nil {
		return err
	}

	doc, err := load(text, opts.Lenient)
	if err != nil {
		return err
	}

	var report any
	if opts.Query != "" {
		var decoded any
		if err := doc.Decode(&decoded); err != nil {
			return err
		}
		report, err = jmespath.Search(opts.Query, decoded)
		if err != nil {
			return fmt.Errorf("invalid query %q: %w", opts.Query, err)
		}
	} else {
		report = summarize(doc)
	}

	return printReport(report, opts.OutputFormat)
}

func summarize(doc settings.Value) Summary {
	s := Summary{Kind: doc.Kind().String(), Fields: doc.Len()}

	if doc.Kind() != settings.KindObject {
		return s
	}

	fields, err := doc.Fields()
	if err != nil {
		return s
	}
	for _, f := range fields {
		s.TopLevelKeys = append(s.TopLevelKeys, f.Key)
	}

	controls, ok := doc.Field(settings.ControlsKey)
	if !ok {
		return s
	}
	s.HasControls = true
	s.ControlsKind = controls.Kind().String()
	s.ControlsBindings = controls.Len()
	return s
}

func printReport(report any, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "", "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	return nil
}
