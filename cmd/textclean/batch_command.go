package main

import (
	"github.com/spf13/cobra"

	"textclean/internal/errs"
)

type batchResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var workers int
	var cached bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Clean one text per line in parallel",
		Long: `Clean every line of --file (or stdin) as an independent text. Output lines
keep the input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, nil, filePath)
			if err != nil {
				return err
			}
			lines := splitLines(text)

			cfg := ctx.configValue()
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return &errs.ValidationError{Field: "workers", Value: workers, Expected: "a positive integer"}
				}
				cfg.Performance.MaxWorkers = workers
			}
			cleaner, release, err := ctx.newCleaner(cmd, &cfg, false)
			if err != nil {
				return err
			}
			defer release()

			var cleaned []string
			if cached {
				cleaned = make([]string, len(lines))
				for i, line := range lines {
					cleaned[i] = cleaner.CleanTextCached(line)
				}
			} else {
				cleaned, err = cleaner.CleanTextsParallel(cmd.Context(), lines)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				results := make([]batchResult, len(lines))
				for i := range lines {
					results[i] = batchResult{Input: lines[i], Output: cleaned[i]}
				}
				return writeJSON(cmd, results)
			}
			return writeLines(cmd, cleaned)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read texts from a file, one per line")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Override performance.max_workers")
	cmd.Flags().BoolVar(&cached, "cached", false, "Memoize repeated lines instead of fanning out")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit input/output pairs as JSON")
	return cmd
}
