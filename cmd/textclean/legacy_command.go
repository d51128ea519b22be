package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textclean/internal/textutil"
)

func newLegacyCommand() *cobra.Command {
	legacyCmd := &cobra.Command{
		Use:         "legacy",
		Short:       "First-generation cleaning helpers",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	legacyCmd.AddCommand(newLegacyTextCommand("normalize", "Strip tags, accents and symbols, then lowercase", textutil.NormalizeText))
	legacyCmd.AddCommand(newLegacyTextCommand("strip-html", "Remove HTML tags", textutil.RemoveHTMLTags))
	legacyCmd.AddCommand(newLegacyTextCommand("letters", "Keep only ASCII letters and whitespace", textutil.FilterLetters))
	legacyCmd.AddCommand(newLegacyTextCommand("numbers", "Keep only ASCII digits", textutil.FilterNumbers))
	legacyCmd.AddCommand(newLegacyStopwordsCommand())

	return legacyCmd
}

func newLegacyTextCommand(use, short string, fn func(string) string) *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	return cmd
}

func newLegacyStopwordsCommand() *cobra.Command {
	var filePath string
	var lang string
	cmd := &cobra.Command{
		Use:   "stopwords [text]",
		Short: "Remove stopwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			out, err := textutil.RemoveStopwords(text, lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	cmd.Flags().StringVarP(&lang, "language", "l", "portuguese", "Stopword list (portuguese, english, spanish)")
	return cmd
}
