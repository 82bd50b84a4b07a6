// Package detector identifies the language of the analyzed text so the run
// report and history can record what the source was written in.
package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleLimit caps how much text is fed to the language model. A few
// kilobytes is plenty for a confident call and keeps startup fast on
// novel-sized inputs.
const sampleLimit = 4096

// Result holds the detected language of a text.
type Result struct {
	// Language is the lower-case ISO 639-1 code, or "unknown".
	Language   string
	Confidence float64
}

// Detector wraps a lingua language detector built for a fixed candidate set.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a Detector. Construction is relatively expensive (language
// models are loaded), so callers should build once and reuse.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
		lingua.Russian,
		lingua.Ukrainian,
		lingua.Polish,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the most likely language of text. Text the model cannot
// place yields {"unknown", 0}.
func (d *Detector) Detect(text string) Result {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Result{Language: "unknown"}
	}
	if len(sample) > sampleLimit {
		cut := sampleLimit
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return Result{Language: "unknown"}
	}

	return Result{
		Language:   strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(sample, lang),
	}
}
