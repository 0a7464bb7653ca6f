package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// HighScoreKey is the fixed key the best score is stored under.
const HighScoreKey = "skyquiz_highScore"

var (
	// ErrNoHighScore is returned when nothing has been saved yet.
	ErrNoHighScore = errors.New("no saved high score")
	// ErrCorruptHighScore is returned by Load when the file cannot be decoded.
	// The next Save overwrites it.
	ErrCorruptHighScore = errors.New("corrupt high score file")
)

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps key/value scores in a small JSON file.
// It is safe for use by several sessions at once.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the saved score, or ErrNoHighScore if there is none.
func (f *FileStore) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return 0, err
	}
	score, ok := entries[HighScoreKey]
	if !ok {
		return 0, ErrNoHighScore
	}
	return score, nil
}

// Save stores score if it beats the saved one. A corrupt file is replaced.
func (f *FileStore) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	switch {
	case errors.Is(err, ErrNoHighScore), errors.Is(err, ErrCorruptHighScore):
		entries = map[string]int{}
	case err != nil:
		return err
	}
	if prev, ok := entries[HighScoreKey]; ok && prev >= score {
		return nil
	}
	entries[HighScoreKey] = score

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}

	// Write to a temp file and rename so a crash never leaves half a file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

func (f *FileStore) read() (map[string]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoHighScore
	}
	if err != nil {
		return nil, fmt.Errorf("read high score: %w", err)
	}

	entries := map[string]int{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorruptHighScore, f.path, err)
	}
	return entries, nil
}

// MemoryStore keeps the score in memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saved bool
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return 0, ErrNoHighScore
	}
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved || score > m.score {
		m.score = score
		m.saved = true
	}
	return nil
}
