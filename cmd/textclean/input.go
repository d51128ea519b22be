package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"textclean/internal/config"
	"textclean/internal/errs"
)

var inputExtensions = []string{".txt", ".md", ".html", ".htm"}

// readInput returns the text named by --file, the joined positional
// arguments, or stdin, in that order of preference.
func readInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if strings.TrimSpace(filePath) != "" {
		return readInputFile(filePath)
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func readInputFile(path string) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.Wrap(errs.ErrNotFound, "cli", "read input", expanded, nil)
		}
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return "", errs.Wrap(errs.ErrValidation, "cli", "read input", expanded+" is a directory", nil)
	}
	ext := strings.ToLower(filepath.Ext(expanded))
	if ext != "" && !slices.Contains(inputExtensions, ext) {
		return "", &errs.FormatError{Format: ext, Supported: inputExtensions}
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// splitLines breaks text into lines, dropping a trailing empty line left by
// a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
