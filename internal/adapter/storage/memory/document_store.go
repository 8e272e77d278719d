package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// DocumentStore implements ports.DocumentStore in process memory.
// Predicates compare the text form of top-level fields, matching the
// PostgreSQL adapter's body->>field semantics.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]domain.Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]map[string]domain.Document)}
}

// Get returns a copy of the document, or nil if absent.
func (s *DocumentStore) Get(_ context.Context, collection, id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return maps.Clone(doc), nil
}

// Put stores a copy of doc under id, setting its _id field.
func (s *DocumentStore) Put(_ context.Context, collection, id string, doc domain.Document) error {
	if id == "" {
		return fmt.Errorf("put %s: empty document id", collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]domain.Document)
		s.collections[collection] = coll
	}
	stored := maps.Clone(doc)
	if stored == nil {
		stored = domain.Document{}
	}
	stored[domain.DocIDField] = id
	coll[id] = stored
	return nil
}

// Find returns copies of the matching documents. Without SortBy they come
// back in id order.
func (s *DocumentStore) Find(_ context.Context, q ports.Query) ([]domain.Document, error) {
	s.mu.RLock()
	var out []domain.Document
	for _, doc := range s.collections[q.Collection] {
		ok, err := matchesAll(doc, q.Where)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok {
			out = append(out, maps.Clone(doc))
		}
	}
	s.mu.RUnlock()

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = domain.DocIDField
	}
	slices.SortStableFunc(out, func(a, b domain.Document) int {
		av, _ := text(a[sortBy])
		bv, _ := text(b[sortBy])
		if q.Descending {
			return strings.Compare(bv, av)
		}
		return strings.Compare(av, bv)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matchesAll(doc domain.Document, where []ports.Predicate) (bool, error) {
	for _, p := range where {
		ok, err := matches(doc, p)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matches(doc domain.Document, p ports.Predicate) (bool, error) {
	raw, present := doc[p.Field]
	switch p.Op {
	case ports.OpEq, ports.OpNe:
		want, ok := text(p.Value)
		if !ok {
			return false, fmt.Errorf("predicate on %s: unsupported value %T", p.Field, p.Value)
		}
		got, scalar := text(raw)
		if !present || !scalar {
			return false, nil
		}
		return (got == want) == (p.Op == ports.OpEq), nil
	case ports.OpIn:
		set, ok := p.Value.([]string)
		if !ok {
			return false, fmt.Errorf("predicate on %s: in expects []string, got %T", p.Field, p.Value)
		}
		got, scalar := text(raw)
		return present && scalar && slices.Contains(set, got), nil
	case ports.OpContains:
		want, ok := text(p.Value)
		if !ok {
			return false, fmt.Errorf("predicate on %s: unsupported value %T", p.Field, p.Value)
		}
		switch arr := raw.(type) {
		case []any:
			for _, v := range arr {
				if s, ok := text(v); ok && s == want {
					return true, nil
				}
			}
		case []string:
			return slices.Contains(arr, want), nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported operator %q", p.Op)
	}
}

// text renders a scalar the way PostgreSQL's ->> operator would.
func text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	case int, int32, int64, float32, float64:
		return fmt.Sprint(x), true
	default:
		return "", false
	}
}
