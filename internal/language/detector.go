// Package language detects the language of a text and normalizes Thai text
// to English before it reaches the embedding service, so query and corpus
// vectors share one linguistic basis.
package language

import (
	"github.com/pemistahl/lingua-go"
)

// Detector reports the language of a text. ok is false when detection is
// ambiguous (short, mixed or garbled input); callers treat that as "leave the
// text alone".
type Detector interface {
	Detect(text string) (lingua.Language, bool)
}

// LinguaDetector detects Thai vs English with lingua-go. Restricting the
// candidate set keeps detection reliable on short job titles.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Thai, lingua.English).
			Build(),
	}
}

func (d *LinguaDetector) Detect(text string) (lingua.Language, bool) {
	return d.detector.DetectLanguageOf(text)
}
