package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	cerr "github.com/cockroachdb/errors"

	"github.com/GK-Developers/GK-Healter/internal/config"
)

// maxRecords caps the history file; older entries fall off the front.
const maxRecords = 100

// Record is one completed cleaning batch, manual or scheduled.
type Record struct {
	Timestamp  string   `json:"timestamp"`
	Categories []string `json:"categories"`
	Freed      string   `json:"freed"`
	Status     string   `json:"status"` // success, partial, failed
}

// Store reads and appends history records in a JSON file.
type Store struct {
	path string
}

// Open returns the store at the default location
// (~/.config/healter/history.json).
func Open() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "history.json")), nil
}

// OpenAt returns a store backed by an explicit file path.
func OpenAt(path string) *Store {
	return &Store{path: path}
}

// Load returns all records, newest last. A missing file yields an empty
// history.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, cerr.Wrap(err, "reading history")
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, cerr.Wrap(err, "decoding history")
	}
	return records, nil
}

// Append adds a record and rewrites the file, trimming to maxRecords.
func (s *Store) Append(rec Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > maxRecords {
		records = records[len(records)-maxRecords:]
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return cerr.Wrap(err, "creating history directory")
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return cerr.Wrap(err, "encoding history")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return cerr.Wrap(err, "writing history")
	}
	return nil
}

// NewRecord builds a record stamped with the current local time.
func NewRecord(categories []string, freed, status string) Record {
	return Record{
		Timestamp:  time.Now().Format("2006-01-02 15:04:05"),
		Categories: categories,
		Freed:      freed,
		Status:     status,
	}
}
