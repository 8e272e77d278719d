package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"estate-transfer/config"
	"estate-transfer/internal/adapter/storage/memory"
	"estate-transfer/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newTestRetrier() *Retrier {
	return NewRetrier(config.RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}, 0)
}

// recordingNotifier captures notifications instead of mailing them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Send(_ context.Context, msg domain.Notification) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return true
}

// last returns the most recent notification for role.
func (n *recordingNotifier) last(t *testing.T, role domain.Role) domain.Notification {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].Role == role {
			return n.sent[i]
		}
	}
	t.Fatalf("no %s notification sent", role)
	return domain.Notification{}
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// seedDirectory loads a small directory and property registry.
func seedDirectory(t *testing.T) *memory.DocumentStore {
	t.Helper()
	ctx := context.Background()
	docs := memory.NewDocumentStore()

	put := func(coll, id string, doc domain.Document) {
		require.NoError(t, docs.Put(ctx, coll, id, doc))
	}
	put(domain.CollectionAppUsers, "u-alice", domain.Document{"Email": "alice@example.com", "Name": "Alice", "wallet": "0xalice", "role": "USER"})
	put(domain.CollectionAppUsers, "u-bob", domain.Document{"email": "bob@example.com", "name": "Bob", "wallet_address": "0xbob", "role": "USER"})
	put(domain.CollectionGovtCitizen, "g-sam", domain.Document{"email": "sam@survey.gov", "name": "Sam", "designation": "Surveyor"})
	put(domain.CollectionGovtCitizen, "g-dan", domain.Document{"email": "dan@example.com", "name": "Dan"})

	put(domain.CollectionProperties, "prop-1", domain.Document{"wallet": "0xalice"})
	put(domain.CollectionProperties, "p-legacy", domain.Document{"propert_id": "prop-2", "wallet_adrdess": "0xowner"})
	put(domain.CollectionPropDocs, "d-1", domain.Document{"property_id": "prop-1", "gdrive_link": "https://drive.example/prop-1"})
	put(domain.CollectionForSale, "l-1", domain.Document{"property_id": "prop-1", "status": domain.ListingStatusActive})
	return docs
}

// syncWriter serializes log writes from dispatcher workers.
type syncWriter struct {
	mu  sync.Mutex
	buf interface{ Write([]byte) (int, error) }
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}
