package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// Seed loads directory and property records into store. The input is a JSON
// object of collection name to an object of document id to document body:
//
//	{"app-users": {"u-1": {"email": "a@example.com", "wallet": "0xa"}}}
//
// It returns the number of documents written.
func Seed(ctx context.Context, store ports.DocumentStore, r io.Reader) (int, error) {
	var data map[string]map[string]domain.Document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return 0, fmt.Errorf("decoding seed: %w", err)
	}

	n := 0
	for _, coll := range slices.Sorted(maps.Keys(data)) {
		docs := data[coll]
		for _, id := range slices.Sorted(maps.Keys(docs)) {
			if err := store.Put(ctx, coll, id, docs[id]); err != nil {
				return n, fmt.Errorf("seeding %s/%s: %w", coll, id, err)
			}
			n++
		}
	}
	return n, nil
}
