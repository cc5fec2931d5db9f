// Package corpus builds and persists the dated snapshot files the
// recommender searches.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
)

const (
	dateLayout   = "2006-01-02"
	registryName = "registry.log"
)

// Store reads and writes snapshot files under a single data directory.
// Snapshots are named by calendar date; two files exist per batch run, the
// raw postings and the embeddings.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) rawPath(date time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("jobs_%s.json", date.Format(dateLayout)))
}

func (s *Store) embeddingsPath(date time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("jobs_%s_embeddings.json", date.Format(dateLayout)))
}

// WriteRaw persists the raw postings snapshot for the given date and returns
// the file path.
func (s *Store) WriteRaw(date time.Time, jobs []models.Job) (string, error) {
	path := s.rawPath(date)
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal raw snapshot: %w", err)
	}
	return path, s.writeAtomic(path, data)
}

// WriteEmbeddings persists the embeddings snapshot for the given date and
// returns the file path.
func (s *Store) WriteEmbeddings(date time.Time, entries []models.CorpusEntry) (string, error) {
	path := s.embeddingsPath(date)
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal embeddings snapshot: %w", err)
	}
	return path, s.writeAtomic(path, data)
}

// LoadEmbeddings reads the embeddings snapshot for the given date. A missing
// snapshot surfaces as an fs.ErrNotExist-wrapped error; there is no fallback
// to an older date.
func (s *Store) LoadEmbeddings(date time.Time) ([]models.CorpusEntry, error) {
	path := s.embeddingsPath(date)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no embeddings snapshot for %s: %w", date.Format(dateLayout), err)
	}

	var entries []models.CorpusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}

// LoadRaw reads the raw postings snapshot for the given date.
func (s *Store) LoadRaw(date time.Time) ([]models.Job, error) {
	path := s.rawPath(date)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no raw snapshot for %s: %w", date.Format(dateLayout), err)
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return jobs, nil
}

// AppendRegistry appends one record to the append-only snapshot registry, so
// "which snapshots exist" is a query rather than a directory listing.
func (s *Store) AppendRegistry(info models.SnapshotInfo) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(s.dir, registryName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(info); err != nil {
		return fmt.Errorf("append registry: %w", err)
	}
	return nil
}

// Snapshots returns all registry records in append order. A missing registry
// means no snapshots have been written yet.
func (s *Store) Snapshots() ([]models.SnapshotInfo, error) {
	f, err := os.Open(filepath.Join(s.dir, registryName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	var infos []models.SnapshotInfo
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var info models.SnapshotInfo
		if err := json.Unmarshal(line, &info); err != nil {
			return nil, fmt.Errorf("decode registry line: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, scanner.Err()
}

// writeAtomic writes via a temp file and rename so readers never observe a
// half-written snapshot.
func (s *Store) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
