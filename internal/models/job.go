package models

import "time"

// Job is one structured job posting extracted from the listing site.
// Field names match the snapshot files on disk, so snapshots written by
// earlier batch runs keep loading unchanged.
type Job struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Salary           string   `json:"salary"`
	DatePosted       string   `json:"date_posted"`
	URL              string   `json:"url"`
	DescriptionPart1 string   `json:"description_part1"`
	DescriptionPart2 string   `json:"description_part2"`
	DescriptionPart3 string   `json:"description_part3"`
	Qualifications   []string `json:"qualifications"`
}

// CorpusEntry pairs a job with its embedding vector. Entries are written once
// per batch run and never mutated; the next day's snapshot supersedes them.
type CorpusEntry struct {
	Job       Job       `json:"job"`
	Embedding []float32 `json:"embedding"`
}

// RankedResult is one recommendation: a job's display fields plus its cosine
// similarity against the query, rounded to 3 decimals.
type RankedResult struct {
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location"`
	Salary   string  `json:"salary"`
	URL      string  `json:"url"`
	Score    float64 `json:"score"`
}

// SnapshotInfo is one record in the append-only snapshot registry.
type SnapshotInfo struct {
	Date          string    `json:"date"`
	RawCount      int       `json:"raw_count"`
	EmbeddedCount int       `json:"embedded_count"`
	CreatedAt     time.Time `json:"created_at"`
}
