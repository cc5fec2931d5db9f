package corpus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/embedding"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/language"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
)

// combinedTextLimit bounds the text sent to the normalization and embedding
// services.
const combinedTextLimit = 10000

// Builder turns extracted postings into the raw and embeddings snapshots.
type Builder struct {
	normalizer *language.Normalizer
	embedder   embedding.Embedder
	store      *Store
}

// BuildStats reports what one batch run produced. RawCount and EmbeddedCount
// diverge by Skipped when embedding fails for some postings.
type BuildStats struct {
	RawCount      int
	EmbeddedCount int
	Skipped       int
}

func NewBuilder(normalizer *language.Normalizer, embedder embedding.Embedder, store *Store) *Builder {
	return &Builder{normalizer: normalizer, embedder: embedder, store: store}
}

// Build writes the raw snapshot unconditionally, then embeds each posting and
// writes the embeddings snapshot. A posting whose embedding fails stays in
// the raw snapshot but is dropped from the embeddings snapshot: raw data is
// never lost, the searchable corpus only holds vectorized entries.
func (b *Builder) Build(ctx context.Context, date time.Time, jobs []models.Job) (BuildStats, error) {
	log := logger.Get().With().Str("component", "builder").Logger()
	stats := BuildStats{RawCount: len(jobs)}

	rawPath, err := b.store.WriteRaw(date, jobs)
	if err != nil {
		return stats, fmt.Errorf("writing raw snapshot: %w", err)
	}
	log.Info().Int("jobs", len(jobs)).Str("path", rawPath).Msg("Saved raw snapshot")

	entries := make([]models.CorpusEntry, 0, len(jobs))
	for _, job := range jobs {
		text := combinedText(job)
		normalized, outcome := b.normalizer.Normalize(ctx, text)
		if outcome == language.OutcomeTranslated {
			log.Debug().Str("url", job.URL).Msg("Translated Thai posting text")
		}

		vector, err := b.embedder.Embed(ctx, normalized)
		if err != nil {
			stats.Skipped++
			log.Warn().Err(err).Str("url", job.URL).Msg("Embedding failed, posting excluded from corpus")
			continue
		}
		entries = append(entries, models.CorpusEntry{Job: job, Embedding: vector})
	}

	embedPath, err := b.store.WriteEmbeddings(date, entries)
	if err != nil {
		return stats, fmt.Errorf("writing embeddings snapshot: %w", err)
	}
	stats.EmbeddedCount = len(entries)
	log.Info().Int("entries", len(entries)).Str("path", embedPath).Msg("Saved embeddings snapshot")

	info := models.SnapshotInfo{
		Date:          date.Format(dateLayout),
		RawCount:      stats.RawCount,
		EmbeddedCount: stats.EmbeddedCount,
		CreatedAt:     time.Now(),
	}
	if err := b.store.AppendRegistry(info); err != nil {
		log.Warn().Err(err).Msg("Failed to update snapshot registry")
	}

	return stats, nil
}

// combinedText joins the fields that carry semantic content into one string,
// truncated to combinedTextLimit characters.
func combinedText(job models.Job) string {
	text := strings.Join([]string{
		job.Title,
		job.DescriptionPart1,
		job.DescriptionPart2,
		job.DescriptionPart3,
		strings.Join(job.Qualifications, " "),
	}, " ")

	if runes := []rune(text); len(runes) > combinedTextLimit {
		return string(runes[:combinedTextLimit])
	}
	return text
}
