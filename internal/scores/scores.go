// Package scores keeps the local high-score table in a small YAML file.
package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxEntries is the length of the table.
const MaxEntries = 10

// Entry is one finished run.
type Entry struct {
	Score int       `yaml:"score"`
	Level int       `yaml:"level"`
	Size  int       `yaml:"size"`
	At    time.Time `yaml:"at"`
}

type file struct {
	Scores []Entry `yaml:"scores"`
}

// Store reads and writes the table at path.
type Store struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// NewStore returns a store backed by path. The file is created on first save.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// TopScores returns the table, best first. A missing file is an empty table.
func (s *Store) TopScores() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveScore records a run and returns the updated table.
func (s *Store) SaveScore(score, level, size int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	entries = append(entries, Entry{Score: score, Level: level, Size: size, At: s.now().UTC()})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	if err := s.write(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scores %s: %w", s.path, err)
	}
	sort.SliceStable(f.Scores, func(i, j int) bool { return f.Scores[i].Score > f.Scores[j].Score })
	if len(f.Scores) > MaxEntries {
		f.Scores = f.Scores[:MaxEntries]
	}
	return f.Scores, nil
}

func (s *Store) write(entries []Entry) error {
	data, err := yaml.Marshal(file{Scores: entries})
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}
