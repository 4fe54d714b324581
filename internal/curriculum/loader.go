// Package curriculum loads syllabus presets from YAML files.
package curriculum

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader loads and caches syllabus presets from the filesystem.
type Loader struct {
	rootDir string
	syllabi map[string]Syllabus
	mu      sync.RWMutex
}

// NewLoader creates a new loader and loads all presets under rootDir.
// A missing directory yields an empty loader.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		syllabi: make(map[string]Syllabus),
	}

	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		slog.Warn("syllabus directory not found", "path", rootDir)
		return l, nil
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading syllabi: %w", err)
	}

	slog.Info("syllabi loaded", "count", len(l.syllabi))
	return l, nil
}

// Get returns a syllabus by ID.
func (l *Loader) Get(id string) (Syllabus, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.syllabi[id]
	return s, ok
}

// All returns every loaded syllabus sorted by ID.
func (l *Loader) All() []Syllabus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Syllabus, 0, len(l.syllabi))
	for _, s := range l.syllabi {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			return l.loadSyllabus(path)
		}
		return nil
	})
}

func (l *Loader) loadSyllabus(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var s Syllabus
	if err := yaml.Unmarshal(data, &s); err != nil {
		slog.Warn("skipping invalid syllabus YAML", "path", path, "error", err)
		return nil
	}

	if s.ID == "" || len(s.Units) == 0 {
		return nil // Not a syllabus file
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, dup := l.syllabi[s.ID]; dup {
		slog.Warn("duplicate syllabus id, keeping first", "id", s.ID, "kept", prev.Name, "path", path)
		return nil
	}
	l.syllabi[s.ID] = s

	return nil
}
