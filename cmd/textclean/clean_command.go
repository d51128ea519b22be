package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var caseFlag string
	var filePath string
	var distributed bool
	var chunked bool

	cmd := &cobra.Command{
		Use:   "clean [text]",
		Short: "Clean text with the configured pipeline",
		Long: `Clean text with the pipeline described by the [cleaner] section of the
configuration. Text is taken from the arguments, from --file, or from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			cfg := ctx.configValue()
			if c := strings.TrimSpace(caseFlag); c != "" {
				cfg.Cleaner.DefaultCase = c
			}
			cleaner, release, err := ctx.newCleaner(cmd, &cfg, distributed)
			if err != nil {
				return err
			}
			defer release()

			var result string
			switch {
			case distributed:
				result = cleaner.CleanTextDistributed(cmd.Context(), text)
			case chunked:
				result, err = cleaner.CleanLargeText(cmd.Context(), text, 0)
				if err != nil {
					return err
				}
			default:
				result = cleaner.CleanText(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFlag, "case", "", "Case mode (lower, upper, title, snake, camel, pascal)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	cmd.Flags().BoolVar(&distributed, "distributed", false, "Look results up in the configured cache backend")
	cmd.Flags().BoolVar(&chunked, "chunked", false, "Clean in parallel chunks of performance.chunk_size runes")
	return cmd
}
