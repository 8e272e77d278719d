package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// DocumentStore implements ports.DocumentStore over a single jsonb table
// keyed by (collection, id). Predicates compare body->>field text, so a
// missing or null field never satisfies eq, ne or in.
type DocumentStore struct {
	pool Pool
}

// NewDocumentStore creates a PostgreSQL-backed document store.
func NewDocumentStore(pool Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

// Get fetches one document by id.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (domain.Document, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return decodeDocument(id, body)
}

// Put upserts a document.
func (s *DocumentStore) Put(ctx context.Context, collection, id string, doc domain.Document) error {
	if id == "" {
		return fmt.Errorf("put %s: empty document id", collection)
	}
	stored := make(domain.Document, len(doc))
	for k, v := range doc {
		if k != domain.DocIDField {
			stored[k] = v
		}
	}
	body, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body`,
		collection, id, body,
	)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Find runs q against one collection.
func (s *DocumentStore) Find(ctx context.Context, q ports.Query) ([]domain.Document, error) {
	query, args, err := buildFind(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", q.Collection, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := decodeDocument(id, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// buildFind translates q into SQL. Field names are bound as parameters,
// never interpolated.
func buildFind(q ports.Query) (string, []any, error) {
	conditions := []string{"collection = $1"}
	args := []any{q.Collection}
	param := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	field := func(name string) string {
		if name == domain.DocIDField {
			return "id"
		}
		return "body->>" + param(name)
	}

	for _, p := range q.Where {
		switch p.Op {
		case ports.OpEq, ports.OpNe:
			v, ok := p.Value.(string)
			if !ok {
				return "", nil, fmt.Errorf("predicate on %s: unsupported value %T", p.Field, p.Value)
			}
			op := "="
			if p.Op == ports.OpNe {
				op = "<>"
			}
			conditions = append(conditions, fmt.Sprintf("%s %s %s", field(p.Field), op, param(v)))
		case ports.OpIn:
			v, ok := p.Value.([]string)
			if !ok {
				return "", nil, fmt.Errorf("predicate on %s: in expects []string, got %T", p.Field, p.Value)
			}
			conditions = append(conditions, fmt.Sprintf("%s = ANY(%s)", field(p.Field), param(v)))
		case ports.OpContains:
			v, ok := p.Value.(string)
			if !ok {
				return "", nil, fmt.Errorf("predicate on %s: unsupported value %T", p.Field, p.Value)
			}
			conditions = append(conditions, fmt.Sprintf("body->%s @> jsonb_build_array(%s::text)", param(p.Field), param(v)))
		default:
			return "", nil, fmt.Errorf("unsupported operator %q", p.Op)
		}
	}

	order := "ASC"
	if q.Descending {
		order = "DESC"
	}
	sortBy := "id"
	if q.SortBy != "" {
		sortBy = field(q.SortBy)
	}

	query := fmt.Sprintf("SELECT id, body FROM documents WHERE %s ORDER BY %s %s, id %s",
		strings.Join(conditions, " AND "), sortBy, order, order)
	if q.Limit > 0 {
		query += " LIMIT " + param(q.Limit)
	}
	return query, args, nil
}

func decodeDocument(id string, body []byte) (domain.Document, error) {
	doc := domain.Document{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
	}
	doc[domain.DocIDField] = id
	return doc, nil
}
