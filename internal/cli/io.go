package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/krunkertools/bindsync/internal/config"
)

// readInput resolves one document's text: clipboard, file path, or stdin
// (path empty or "-").
func readInput(path string, fromClipboard bool) (string, error) {
	if fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, nil
	}

	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput delivers a result document: file, clipboard, stdout, or any
// combination the caller asked for.
func writeOutput(text, savePath string, toClipboard bool) error {
	wrote := false

	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(text+"\n"), config.FilePermissions); err != nil {
			return fmt.Errorf("failed to save %s: %w", savePath, err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", savePath)
		wrote = true
	}

	if toClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Result copied to clipboard")
		wrote = true
	}

	if !wrote {
		fmt.Println(text)
	}
	return nil
}
