package patterns

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/rubicon/gylr-go/internal/models"
)

// mappingsKey is the single document key holding the full mapping list.
const mappingsKey = "gylr/category_mappings"

// mappingsDoc is the persisted document shape: { "mappings": [...] }.
type mappingsDoc struct {
	Mappings []models.CategoryMapping `json:"mappings"`
}

// Store manages user-defined category mappings. Every operation is a
// whole-collection read-modify-write against the key-value store.
//
// Storage failures are absorbed here and never propagate: a failed load
// surfaces as an empty mapping set (a recoverable cold-start condition,
// not a fault) and writes are best effort with a logged warning.
type Store struct {
	kv     KeyValue
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewStore creates a Pattern Store over the given key-value backend.
func NewStore(kv KeyValue, clock clockwork.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, clock: clock, logger: logger}
}

// Load returns all stored mappings in insertion order. Any read or
// decode failure yields an empty list.
func (s *Store) Load(ctx context.Context) []models.CategoryMapping {
	raw, ok, err := s.kv.Get(ctx, mappingsKey)
	if err != nil {
		s.logger.Warn("failed to load category mappings", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var doc mappingsDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Warn("failed to decode category mappings", "error", err)
		return nil
	}
	return doc.Mappings
}

// Save upserts a mapping: any existing mapping with the same pattern
// (case-insensitive) is removed, the new one appended, and the full list
// persisted. The pattern is normalized to lowercase.
func (s *Store) Save(ctx context.Context, pattern string, category models.Category) models.CategoryMapping {
	mappings := s.Load(ctx)
	mappings = removePattern(mappings, pattern)

	mapping := models.CategoryMapping{
		Pattern:   strings.ToLower(pattern),
		Category:  category,
		CreatedAt: s.clock.Now(),
	}
	mappings = append(mappings, mapping)

	s.persist(ctx, mappings)
	return mapping
}

// Remove deletes the mapping with the given pattern, if present.
func (s *Store) Remove(ctx context.Context, pattern string) {
	mappings := s.Load(ctx)
	s.persist(ctx, removePattern(mappings, pattern))
}

// Clear removes all mappings.
func (s *Store) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, mappingsKey); err != nil {
		s.logger.Warn("failed to clear category mappings", "error", err)
	}
}

func (s *Store) persist(ctx context.Context, mappings []models.CategoryMapping) {
	if mappings == nil {
		mappings = []models.CategoryMapping{}
	}
	raw, err := json.Marshal(mappingsDoc{Mappings: mappings})
	if err != nil {
		s.logger.Warn("failed to encode category mappings", "error", err)
		return
	}
	if err := s.kv.Set(ctx, mappingsKey, string(raw)); err != nil {
		s.logger.Warn("failed to persist category mappings", "error", err)
	}
}

func removePattern(mappings []models.CategoryMapping, pattern string) []models.CategoryMapping {
	lower := strings.ToLower(pattern)
	filtered := mappings[:0]
	for _, m := range mappings {
		if strings.ToLower(m.Pattern) != lower {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
