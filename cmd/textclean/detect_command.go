package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textclean/internal/language"
)

func newDetectCommand() *cobra.Command {
	var filePath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "detect [text]",
		Short:       "Detect the language of a text",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			code := language.Detect(text)
			name := "Unknown"
			if code != language.Unknown {
				name = language.DisplayName(code)
			}
			if jsonOutput {
				return writeJSON(cmd, map[string]string{"language": code, "name": name})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", code, name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file (.txt, .md, .html)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	return cmd
}
