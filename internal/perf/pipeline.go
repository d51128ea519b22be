package perf

import (
	"textclean/internal/advanced"
	"textclean/internal/config"
	"textclean/internal/textutil"
)

type pipelineStep struct {
	name  string
	apply func(string) string
}

// Pipeline is a cleaning function assembled from the [cleaner] toggles. The
// steps run in a fixed order: HTML, emojis, URLs, emails, ordinals, dates,
// measurements, accents, special characters, whitespace, case and finally
// proper-name capitalization.
type Pipeline struct {
	steps []pipelineStep
	mode  textutil.CaseMode
}

// NewPipeline validates the case mode and builds the pipeline. With the
// default toggles it is equivalent to textutil.CleanText in lower case.
func NewPipeline(cfg config.Cleaner) (*Pipeline, error) {
	mode, err := textutil.ParseCaseMode(cfg.DefaultCase)
	if err != nil {
		return nil, err
	}

	candidates := []struct {
		enabled bool
		step    pipelineStep
	}{
		{cfg.RemoveHTML, pipelineStep{"remove_html", textutil.RemoveHTML}},
		{cfg.RemoveEmojis, pipelineStep{"remove_emojis", advanced.RemoveEmojis}},
		{cfg.RemoveURLs, pipelineStep{"remove_urls", advanced.RemoveURLs}},
		{cfg.RemoveEmails, pipelineStep{"remove_emails", advanced.RemoveEmails}},
		{cfg.NormalizeNumbers, pipelineStep{"normalize_numbers", advanced.NormalizeNumbers}},
		{cfg.NormalizeDates, pipelineStep{"normalize_dates", advanced.NormalizeDates}},
		{cfg.NormalizeMeasures, pipelineStep{"normalize_measurements", advanced.NormalizeMeasurements}},
		{cfg.RemoveAccents, pipelineStep{"remove_accents", textutil.RemoveAccents}},
		{cfg.RemoveSpecialChars, pipelineStep{"remove_special_chars", textutil.RemoveSpecialCharacters}},
		{cfg.RemoveExtraSpaces, pipelineStep{"remove_extra_spaces", textutil.RemoveExtraSpaces}},
		{true, pipelineStep{"case_" + string(mode), func(s string) string {
			out, _ := textutil.ApplyCase(s, mode)
			return out
		}}},
		{cfg.NormalizeProperNames, pipelineStep{"normalize_proper_names", advanced.NormalizeProperNames}},
	}

	p := &Pipeline{mode: mode}
	for _, c := range candidates {
		if c.enabled {
			p.steps = append(p.steps, c.step)
		}
	}
	return p, nil
}

// Clean runs every enabled step on text.
func (p *Pipeline) Clean(text string) string {
	for _, s := range p.steps {
		text = s.apply(text)
	}
	return text
}

// Steps lists the enabled step names in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

// Mode reports the configured case mode.
func (p *Pipeline) Mode() textutil.CaseMode { return p.mode }
