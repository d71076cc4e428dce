package locale

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"notifier/internal/domain"
)

// Store owns the in-memory locale catalog. It is read-mostly: Load publishes a
// fully built replacement catalog under the write lock, so concurrent Resolve
// calls never observe a half-loaded catalog.
type Store struct {
	logger *slog.Logger
	dir    string

	mu      sync.RWMutex
	catalog map[string]domain.TranslationTree
}

// NewStore creates a Store reading locale files from dir. The catalog is empty
// until Load is called.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		logger:  logger,
		dir:     dir,
		catalog: map[string]domain.TranslationTree{},
	}
}

// Load scans the locale directory for *.json files and replaces the catalog
// with their contents. The filename stem is the locale code. A file that fails
// to parse is logged and skipped; it never aborts the load. A missing
// directory is logged as a warning and leaves the catalog empty. Load is safe
// to call again at runtime to reload translations.
func (s *Store) Load() error {
	catalog := map[string]domain.TranslationTree{}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("locales directory not found", "dir", s.dir, "err", err)
		s.publish(catalog)
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".json")
		path := filepath.Join(s.dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error("failed to read locale file", "file", entry.Name(), "err", err)
			continue
		}
		var tree domain.TranslationTree
		if err := json.Unmarshal(raw, &tree); err != nil {
			s.logger.Error("failed to parse locale file", "file", entry.Name(), "err", err)
			continue
		}
		catalog[code] = tree
		s.logger.Info("loaded locale", "locale", code)
	}

	s.publish(catalog)
	return nil
}

// Resolve returns the translation tree for the given locale code. An unknown
// code falls back to the default locale; when even the default is missing it
// returns an empty tree. Resolve never returns nil.
func (s *Store) Resolve(locale string) domain.TranslationTree {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tree, ok := s.catalog[locale]; ok {
		return tree
	}
	s.logger.Warn("locale not found, falling back to default", "locale", locale, "default", domain.DefaultLocale)
	if tree, ok := s.catalog[domain.DefaultLocale]; ok {
		return tree
	}
	return domain.TranslationTree{}
}

func (s *Store) publish(catalog map[string]domain.TranslationTree) {
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
}
