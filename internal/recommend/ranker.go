// Package recommend ranks the job corpus against a query by cosine
// similarity over the current day's embeddings snapshot.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/embedding"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/language"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
)

// DefaultTopK is the result count used when the caller does not ask for one.
const DefaultTopK = 5

// ErrQueryEmbedding marks a failure to embed the query text. The HTTP
// handler maps it to a structured JSON error rather than a generic server
// fault, so the caller always gets a well-formed response.
var ErrQueryEmbedding = errors.New("failed to embed query")

// SnapshotLoader provides the corpus for a given date.
type SnapshotLoader interface {
	LoadEmbeddings(date time.Time) ([]models.CorpusEntry, error)
}

// Recommender scores every corpus entry against a query vector. The scan is
// exhaustive; the corpus is assumed small enough that no ANN index is needed.
type Recommender struct {
	normalizer *language.Normalizer
	embedder   embedding.Embedder
	snapshots  SnapshotLoader
	now        func() time.Time
}

func New(normalizer *language.Normalizer, embedder embedding.Embedder, snapshots SnapshotLoader) *Recommender {
	return &Recommender{
		normalizer: normalizer,
		embedder:   embedder,
		snapshots:  snapshots,
		now:        time.Now,
	}
}

// Rank returns the topK postings most similar to query, scored by cosine
// similarity and rounded to 3 decimals. Ordering is descending by score with
// ties kept in corpus order. A missing snapshot for today is an error; the
// recommender never falls back to a stale corpus.
func (r *Recommender) Rank(ctx context.Context, query string, topK int) ([]models.RankedResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	log := logger.Get().With().Str("component", "recommender").Logger()

	normalized, outcome := r.normalizer.Normalize(ctx, query)
	if outcome == language.OutcomeTranslated {
		log.Info().Str("query", normalized).Msg("Translated query")
	}

	queryVector, err := r.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryEmbedding, err)
	}
	if norm(queryVector) == 0 {
		return nil, fmt.Errorf("%w: zero-norm query vector", ErrQueryEmbedding)
	}

	entries, err := r.snapshots.LoadEmbeddings(r.now())
	if err != nil {
		return nil, fmt.Errorf("loading today's snapshot: %w", err)
	}

	type scored struct {
		score float64
		job   models.Job
	}
	results := make([]scored, 0, len(entries))
	for _, entry := range entries {
		score, ok := cosineSimilarity(queryVector, entry.Embedding)
		if !ok {
			// Zero-norm or mismatched vectors are upstream defects; skip
			// instead of letting a NaN reach the sort.
			log.Warn().Str("url", entry.Job.URL).Msg("Skipping entry with unusable vector")
			continue
		}
		results = append(results, scored{score: score, job: entry.Job})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if topK < len(results) {
		results = results[:topK]
	}

	ranked := make([]models.RankedResult, len(results))
	for i, res := range results {
		ranked[i] = models.RankedResult{
			Title:    res.job.Title,
			Company:  res.job.Company,
			Location: res.job.Location,
			Salary:   res.job.Salary,
			URL:      res.job.URL,
			Score:    math.Round(res.score*1000) / 1000,
		}
	}
	return ranked, nil
}

// cosineSimilarity returns dot(a,b) / (|a|·|b|), accumulated in float64. ok
// is false when the vectors differ in length or either has zero norm.
func cosineSimilarity(a, b []float32) (float64, bool) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
