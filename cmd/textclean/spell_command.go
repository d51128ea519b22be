package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textclean/internal/spell"
)

func newSpellCommand(ctx *commandContext) *cobra.Command {
	var lang string

	spellCmd := &cobra.Command{
		Use:   "spell",
		Short: "Dictionary-based spell checking",
	}
	spellCmd.PersistentFlags().StringVarP(&lang, "language", "l", "", "Dictionary language (defaults to cleaner.default_language)")

	newChecker := func(cmd *cobra.Command) (*spell.Checker, func(), error) {
		cfg := ctx.configValue()
		logger, closeLog, err := ctx.logger(cmd, &cfg)
		if err != nil {
			return nil, nil, err
		}
		code := strings.TrimSpace(lang)
		if code == "" {
			code = cfg.Cleaner.DefaultLanguage
		}
		checker, err := spell.New(code, logger)
		if err != nil {
			closeLog()
			return nil, nil, err
		}
		return checker, closeLog, nil
	}

	spellCmd.AddCommand(newSpellCheckCommand(newChecker))
	spellCmd.AddCommand(newSpellCorrectCommand(newChecker))
	spellCmd.AddCommand(newSpellSuggestCommand(newChecker))
	return spellCmd
}

type checkerFactory func(*cobra.Command) (*spell.Checker, func(), error)

func newSpellCheckCommand(newChecker checkerFactory) *cobra.Command {
	var filePath string
	var asTable bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "List misspelled words with suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			checker, release, err := newChecker(cmd)
			if err != nil {
				return err
			}
			defer release()
			misspelled := checker.CheckText(text)
			if jsonOutput {
				return writeJSON(cmd, misspelled)
			}

			words := make([]string, 0, len(misspelled))
			for word := range misspelled {
				words = append(words, word)
			}
			sort.Strings(words)

			out := cmd.OutOrStdout()
			if len(words) == 0 {
				fmt.Fprintln(out, "No misspellings found")
				return nil
			}
			if asTable || isTerminal(out) {
				rows := make([][]string, 0, len(words))
				for _, word := range words {
					rows = append(rows, []string{word, strconv.Itoa(len(misspelled[word])), strings.Join(misspelled[word], ", ")})
				}
				fmt.Fprintln(out, renderTable([]tableColumn{
					{header: "Word"},
					{header: "Candidates", align: alignRight},
					{header: "Suggestions", maxWidth: 60},
				}, rows))
				return nil
			}
			for _, word := range words {
				fmt.Fprintf(out, "%s\t%s\n", word, strings.Join(misspelled[word], ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	cmd.Flags().BoolVar(&asTable, "table", false, "Render a table even when stdout is not a terminal")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the misspellings as JSON")
	return cmd
}

func newSpellCorrectCommand(newChecker checkerFactory) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "correct [text]",
		Short: "Replace misspelled words with their best correction",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			checker, release, err := newChecker(cmd)
			if err != nil {
				return err
			}
			defer release()
			fmt.Fprintln(cmd.OutOrStdout(), checker.CorrectText(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	return cmd
}

func newSpellSuggestCommand(newChecker checkerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <word>",
		Short: "List suggestions for a single word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, release, err := newChecker(cmd)
			if err != nil {
				return err
			}
			defer release()
			return writeLines(cmd, checker.Suggestions(args[0]))
		},
	}
}
