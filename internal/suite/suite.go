// Package suite persists named collections of extracted documents on disk.
// A suite caches the extractor's output at add time, so exporting from a
// suite never re-reads the source files.
package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/caseloom/caseloom-cli/internal/extractor"
	"github.com/caseloom/caseloom-cli/internal/utils"
)

const suiteFileName = "suite.json"

// Suite represents a CaseLoom suite persisted on disk.
type Suite struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Documents   map[string]*Document `json:"documents"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`

	// Not serialized: on-disk location of the suite.json
	rootDir string
}

// New constructs an in-memory suite. Call Save() to persist.
func New(name, description, rootDir string) *Suite {
	return &Suite{
		Name:        name,
		Description: description,
		Documents:   make(map[string]*Document),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		rootDir:     rootDir,
	}
}

// Load reads a suite.json from the provided directory.
func Load(dir string) (*Suite, error) {
	path := filepath.Join(dir, suiteFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("suite not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read suite: %w", err)
	}
	var s Suite
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	s.rootDir = dir
	return &s, nil
}

// RootDir returns the on-disk suite directory path.
func (s *Suite) RootDir() string { return s.rootDir }

// Save writes suite.json using atomic write.
func (s *Suite) Save() error {
	if s.rootDir == "" {
		return errors.New("suite root directory not set")
	}
	if err := utils.EnsureDir(s.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	s.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(s)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(s.rootDir, suiteFileName), data)
}

// AddDocument extracts a file's text and adds it to the suite. Unsupported
// or corrupt files are rejected here, so a suite only holds extracted text.
func (s *Suite) AddDocument(path, description string) error {
	text, err := extractor.Extract(path)
	if err != nil {
		return fmt.Errorf("extract document: %w", err)
	}
	d := &Document{
		ID:          uuid.NewString(),
		Path:        path,
		Name:        filepath.Base(path),
		Description: description,
		Text:        text,
		AddedAt:     time.Now(),
	}
	if s.Documents == nil {
		s.Documents = make(map[string]*Document)
	}
	s.Documents[d.ID] = d
	s.UpdatedAt = time.Now()
	return nil
}

// SortedDocuments returns documents ordered by add time, then name, for
// stable export output.
func (s *Suite) SortedDocuments() []*Document {
	docs := make([]*Document, 0, len(s.Documents))
	for _, d := range s.Documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].AddedAt.Equal(docs[j].AddedAt) {
			return docs[i].AddedAt.Before(docs[j].AddedAt)
		}
		return docs[i].Name < docs[j].Name
	})
	return docs
}
