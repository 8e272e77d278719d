package memory

import (
	"context"
	"testing"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocuments(t *testing.T) *DocumentStore {
	t.Helper()
	s := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, domain.CollectionAppUsers, "u2", domain.Document{"email": "bob@example.com", "role": "SURVEYOR"}))
	require.NoError(t, s.Put(ctx, domain.CollectionAppUsers, "u1", domain.Document{"email": "alice@example.com", "role": "USER"}))
	require.NoError(t, s.Put(ctx, domain.CollectionAppUsers, "u3", domain.Document{"Email": "carol@example.com", "tags": []any{"gov", "field"}}))
	return s
}

func TestDocumentStore_GetAndPut(t *testing.T) {
	s := seedDocuments(t)
	ctx := context.Background()

	doc, err := s.Get(ctx, domain.CollectionAppUsers, "u1")
	require.NoError(t, err)
	email, _ := doc.String("email")
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "u1", doc.ID())

	doc["email"] = "mutated@example.com"
	again, err := s.Get(ctx, domain.CollectionAppUsers, "u1")
	require.NoError(t, err)
	email, _ = again.String("email")
	assert.Equal(t, "alice@example.com", email)

	missing, err := s.Get(ctx, domain.CollectionAppUsers, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, s.Put(ctx, domain.CollectionAppUsers, "", domain.Document{}))
}

func TestDocumentStore_Find(t *testing.T) {
	s := seedDocuments(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query ports.Query
		ids   []string
	}{
		{
			name:  "eq",
			query: ports.Query{Collection: domain.CollectionAppUsers, Where: []ports.Predicate{ports.Eq("email", "bob@example.com")}},
			ids:   []string{"u2"},
		},
		{
			name:  "ne requires field present",
			query: ports.Query{Collection: domain.CollectionAppUsers, Where: []ports.Predicate{{Field: "role", Op: ports.OpNe, Value: "USER"}}},
			ids:   []string{"u2"},
		},
		{
			name:  "in",
			query: ports.Query{Collection: domain.CollectionAppUsers, Where: []ports.Predicate{{Field: "email", Op: ports.OpIn, Value: []string{"alice@example.com", "bob@example.com"}}}},
			ids:   []string{"u1", "u2"},
		},
		{
			name:  "contains",
			query: ports.Query{Collection: domain.CollectionAppUsers, Where: []ports.Predicate{{Field: "tags", Op: ports.OpContains, Value: "field"}}},
			ids:   []string{"u3"},
		},
		{
			name:  "descending with limit",
			query: ports.Query{Collection: domain.CollectionAppUsers, SortBy: domain.DocIDField, Descending: true, Limit: 2},
			ids:   []string{"u3", "u2"},
		},
		{
			name:  "unknown collection",
			query: ports.Query{Collection: "missing"},
			ids:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := s.Find(ctx, tt.query)
			require.NoError(t, err)
			var ids []string
			for _, d := range docs {
				ids = append(ids, d.ID())
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestDocumentStore_Find_RejectsBadPredicate(t *testing.T) {
	s := seedDocuments(t)

	_, err := s.Find(context.Background(), ports.Query{
		Collection: domain.CollectionAppUsers,
		Where:      []ports.Predicate{{Field: "email", Op: ports.OpIn, Value: "not-a-slice"}},
	})
	assert.Error(t, err)
}
