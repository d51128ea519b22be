package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"textclean/internal/errs"
)

func TestCleanCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default pipeline", []string{"clean", "Olá, Mundo!"}, "ola mundo\n"},
		{"joined args", []string{"clean", "Olá,", "Mundo!"}, "ola mundo\n"},
		{"upper case", []string{"clean", "--case", "upper", "<p>Olá, Mundo!</p>"}, "OLA MUNDO\n"},
		{"snake case", []string{"clean", "--case", "snake", "Olá Mundo"}, "ola_mundo\n"},
		{"chunked", []string{"clean", "--chunked", "Olá Mundo"}, "ola mundo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestCleanCommandStdinAndFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLIWithInput(t, []string{"clean"}, env.configPath, "Café com Pão\n")
	if err != nil {
		t.Fatalf("clean stdin: %v", err)
	}
	if out != "cafe com pao\n" {
		t.Fatalf("stdin output = %q", out)
	}

	page := env.writeFile(t, "page.html", "<html><body><h1>Olá</h1><p>Mundo</p></body></html>")
	out, _, err = runCLI(t, []string{"clean", "--file", page}, env.configPath)
	if err != nil {
		t.Fatalf("clean --file: %v", err)
	}
	if out != "ola mundo\n" {
		t.Fatalf("file output = %q", out)
	}

	_, _, err = runCLI(t, []string{"clean", "--file", filepath.Join(env.root, "missing.txt")}, env.configPath)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	pdf := env.writeFile(t, "report.pdf", "%PDF-1.4")
	_, _, err = runCLI(t, []string{"clean", "--file", pdf}, env.configPath)
	var formatErr *errs.FormatError
	if !errors.As(err, &formatErr) || formatErr.Format != ".pdf" {
		t.Fatalf("expected format error for .pdf, got %v", err)
	}
}

func TestCleanCommandRejectsUnknownCase(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"clean", "--case", "kebab", "texto"}, env.configPath)
	if !errors.Is(err, errs.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}

func TestCleanDistributedAndCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	dbPath := filepath.Join(env.root, "cache", "results.db")
	env.writeConfig(t, fmt.Sprintf("[cache]\nbackend = \"sqlite\"\nsqlite_path = %q\n", dbPath))

	for i := 0; i < 2; i++ {
		out, _, err := runCLI(t, []string{"clean", "--distributed", "Olá, Mundo!"}, env.configPath)
		if err != nil {
			t.Fatalf("clean --distributed: %v", err)
		}
		if out != "ola mundo\n" {
			t.Fatalf("distributed output = %q", out)
		}
	}

	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Configured backend: sqlite")
	requireContains(t, out, "SQLite path: "+dbPath)
	requireContains(t, out, "Entries: 1")

	out, _, err = runCLI(t, []string{"cache", "prune"}, env.configPath)
	if err != nil {
		t.Fatalf("cache prune: %v", err)
	}
	requireContains(t, out, "Pruned 0 expired entries")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Cleared cache at "+dbPath)

	out, _, err = runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries: 0")
}

func TestBatchCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	input := "Olá, Mundo!\n<b>Café</b>\n\nAção   Reação\n"

	out, _, err := runCLIWithInput(t, []string{"batch", "--workers", "2"}, env.configPath, input)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if out != "ola mundo\ncafe\n\nacao reacao\n" {
		t.Fatalf("batch output = %q", out)
	}

	out, _, err = runCLIWithInput(t, []string{"batch", "--cached"}, env.configPath, "Olá\nOlá\n")
	if err != nil {
		t.Fatalf("batch --cached: %v", err)
	}
	if out != "ola\nola\n" {
		t.Fatalf("cached output = %q", out)
	}

	file := env.writeFile(t, "lines.txt", "Olá, Mundo!\n")
	out, _, err = runCLI(t, []string{"batch", "--json", "--file", file}, env.configPath)
	if err != nil {
		t.Fatalf("batch --json: %v", err)
	}
	requireContains(t, out, `"input": "Olá, Mundo!"`)
	requireContains(t, out, `"output": "ola mundo"`)

	_, _, err = runCLIWithInput(t, []string{"batch", "--workers", "0"}, env.configPath, "x\n")
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAdvancedCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typos only", []string{"advanced", "--none", "--set", "remove_typos=true", "vc tb"}, "você também\n"},
		{"bare set enables", []string{"advanced", "--none", "--set", "remove_typos", "vc"}, "você\n"},
		{"stem with language", []string{"advanced", "--none", "--stem", "--language", "en", "running quickly"}, "run quick\n"},
		{"proper names", []string{"advanced", "--none", "--proper-names", "maria da silva"}, "Maria da Silva\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}

	out, _, err := runCLI(t, []string{"advanced", "--list"}, env.configPath)
	if err != nil {
		t.Fatalf("advanced --list: %v", err)
	}
	requireContains(t, out, "normalize_abbreviations\n")

	_, _, err = runCLI(t, []string{"advanced", "--set", "bogus=true", "x"}, env.configPath)
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	_, _, err = runCLI(t, []string{"advanced", "--set", "stem=maybe", "x"}, env.configPath)
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, _, err = runCLI(t, []string{"advanced", "--stem", "--language", "xx", "x"}, env.configPath)
	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language, got %v", err)
	}
}

func TestDetectCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	text := "Olá, como você está? Este é um texto escrito em português para testar a detecção de idioma."

	out, _, err := runCLI(t, []string{"detect", text}, env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "pt (")

	out, _, err = runCLI(t, []string{"detect", "--json", ""}, env.configPath)
	if err != nil {
		t.Fatalf("detect --json: %v", err)
	}
	requireContains(t, out, `"language": "unknown"`)
}

func TestLegacyCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"legacy", "normalize", "<p>Olá, Mundo!</p>"}, "ola mundo\n"},
		{[]string{"legacy", "numbers", "tel: (11) 98765-4321"}, "11987654321\n"},
		{[]string{"legacy", "letters", "abc 123 def"}, "abc def\n"},
		{[]string{"legacy", "stopwords", "--language", "pt", "o gato e o rato"}, "gato rato\n"},
	}
	for _, tt := range tests {
		out, _, err := runCLI(t, tt.args, env.configPath)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if out != tt.want {
			t.Fatalf("%v output = %q, want %q", tt.args, out, tt.want)
		}
	}

	_, _, err := runCLI(t, []string{"legacy", "stopwords", "--language", "klingon", "x"}, env.configPath)
	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language, got %v", err)
	}
}

func TestSpellCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"spell", "check", "--language", "pt", "Olá mundu! Como vai vc?"}, env.configPath)
	if err != nil {
		t.Fatalf("spell check: %v", err)
	}
	requireContains(t, out, "mundu\t")
	requireContains(t, out, "vc\tvocê")

	out, _, err = runCLI(t, []string{"spell", "check", "--table", "Olá mundu!"}, env.configPath)
	if err != nil {
		t.Fatalf("spell check --table: %v", err)
	}
	requireContains(t, out, "mundu")
	requireContains(t, out, "mundo")

	out, _, err = runCLI(t, []string{"spell", "check", "Olá mundo!"}, env.configPath)
	if err != nil {
		t.Fatalf("spell check clean: %v", err)
	}
	requireContains(t, out, "No misspellings found")

	out, _, err = runCLI(t, []string{"spell", "correct", "Olá Mundu!"}, env.configPath)
	if err != nil {
		t.Fatalf("spell correct: %v", err)
	}
	if out != "Olá Mundo!\n" {
		t.Fatalf("correct output = %q", out)
	}

	out, _, err = runCLI(t, []string{"spell", "suggest", "--language", "en", "wrld"}, env.configPath)
	if err != nil {
		t.Fatalf("spell suggest: %v", err)
	}
	requireContains(t, out, "world\n")

	_, _, err = runCLI(t, []string{"spell", "correct", "--language", "de", "Hallo"}, env.configPath)
	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language, got %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file did not exist; defaults were used")
	requireContains(t, out, "Configuration valid")

	out, _, err = runCLI(t, []string{"config", "init", "--path", env.configPath}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(env.configPath); err != nil {
		t.Fatalf("expected config file at %s: %v", env.configPath, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", env.configPath}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate sample: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[cleaner]")
	requireContains(t, out, "default_case")

	out, _, err = runCLI(t, []string{"config", "show", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("config show --json: %v", err)
	}
	requireContains(t, out, `"default_case": "lower"`)

	env.writeConfig(t, "[cleaner]\ndefault_case = \"kebab\"\n")
	if _, _, err := runCLI(t, []string{"config", "validate"}, env.configPath); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"clean", "x"}, env.configPath); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected clean to fail on invalid config, got %v", err)
	}
}
