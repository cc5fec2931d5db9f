package language

import (
	"context"

	"github.com/pemistahl/lingua-go"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
)

// Outcome reports which path Normalize took, so callers and tests can tell a
// defaulted result from a successful translation.
type Outcome int

const (
	// OutcomeUnchanged means the text was not Thai, or detection was ambiguous.
	OutcomeUnchanged Outcome = iota
	// OutcomeTranslated means Thai text was translated to English.
	OutcomeTranslated
	// OutcomeFallback means translation failed and the original text was kept.
	OutcomeFallback
)

// Normalizer prepares text for embedding: Thai input is translated to
// English, everything else passes through untouched.
type Normalizer struct {
	detector   Detector
	translator Translator
}

func NewNormalizer(detector Detector, translator Translator) *Normalizer {
	return &Normalizer{detector: detector, translator: translator}
}

// Normalize returns the text to embed. Translation failure is non-fatal: the
// original text is returned with OutcomeFallback and a warning is logged.
func (n *Normalizer) Normalize(ctx context.Context, text string) (string, Outcome) {
	lang, ok := n.detector.Detect(text)
	if !ok || lang != lingua.Thai {
		return text, OutcomeUnchanged
	}

	translated, err := n.translator.TranslateThai(ctx, text)
	if err != nil {
		l := logger.Get()
		l.Warn().Err(err).Msg("Translation failed, keeping original text")
		return text, OutcomeFallback
	}
	return translated, OutcomeTranslated
}
