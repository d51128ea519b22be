package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textclean/internal/advanced"
	"textclean/internal/errs"
	"textclean/internal/language"
)

func newAdvancedCommand(ctx *commandContext) *cobra.Command {
	var (
		filePath     string
		sets         []string
		none         bool
		stem         bool
		lemmatize    bool
		lang         string
		ocr          bool
		measurements bool
		dedupe       bool
		properNames  bool
		pipeline     bool
		listOptions  bool
	)

	cmd := &cobra.Command{
		Use:   "advanced [text]",
		Short: "Apply the advanced normalization steps",
		Long: `Apply emoji, URL, email, typo, ordinal, date, currency, duplicate and
abbreviation normalization. Every step is enabled unless --none is given;
individual steps are toggled with --set name=true|false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listOptions {
				return writeLines(cmd, advanced.OptionNames())
			}

			opts := advanced.DefaultOptions()
			if none {
				opts = advanced.Options{}
			}
			for _, raw := range sets {
				name, value, err := parseOptionFlag(raw)
				if err != nil {
					return err
				}
				if err := opts.Set(name, value); err != nil {
					return err
				}
			}
			opts.Stem = opts.Stem || stem
			opts.Lemmatize = opts.Lemmatize || lemmatize

			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			cfg := ctx.configValue()
			if l := strings.TrimSpace(lang); l != "" {
				if !language.IsSupported(l) {
					return &errs.LanguageError{Language: l, Supported: language.Supported()}
				}
				cfg.Cleaner.DefaultLanguage = language.ToISO2(l)
			}
			cleaner, release, err := ctx.newCleaner(cmd, &cfg, false)
			if err != nil {
				return err
			}
			defer release()

			adv := cleaner.Advanced()
			// An explicit language skips detection.
			stemLang := ""
			if strings.TrimSpace(lang) != "" {
				stemLang = adv.FallbackLanguage()
			}
			text = adv.CleanAdvancedIn(text, opts, stemLang)

			if ocr {
				text = advanced.RemoveOCRNoise(text)
			}
			if measurements {
				text = advanced.NormalizeMeasurements(text)
			}
			if dedupe {
				text = advanced.RemoveDuplicateSentences(text)
			}
			if properNames {
				text = advanced.NormalizeProperNames(text)
			}
			if pipeline {
				text = cleaner.CleanText(text)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Toggle a step, e.g. --set remove_typos=false (repeatable)")
	cmd.Flags().BoolVar(&none, "none", false, "Start with every step disabled")
	cmd.Flags().BoolVar(&stem, "stem", false, "Reduce words to their stems")
	cmd.Flags().BoolVar(&lemmatize, "lemmatize", false, "Replace inflected forms with their lemma")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "Language for stemming and lemmatization (skips detection)")
	cmd.Flags().BoolVar(&ocr, "ocr", false, "Replace digits commonly confused with letters by OCR")
	cmd.Flags().BoolVar(&measurements, "measurements", false, "Spell out measurement units")
	cmd.Flags().BoolVar(&dedupe, "dedupe-sentences", false, "Drop repeated sentences")
	cmd.Flags().BoolVar(&properNames, "proper-names", false, "Capitalize proper names")
	cmd.Flags().BoolVar(&pipeline, "pipeline", false, "Run the configured pipeline afterwards")
	cmd.Flags().BoolVar(&listOptions, "list", false, "List the option names accepted by --set")
	return cmd
}

func parseOptionFlag(raw string) (string, bool, error) {
	name, value, found := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !found {
		return name, true, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return "", false, &errs.ValidationError{Field: name, Value: value, Expected: "a boolean"}
	}
	return name, b, nil
}
