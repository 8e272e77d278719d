package service

import (
	"context"
	"fmt"
	"strings"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// Field-name variants seen in directory records. This file is the only
// place that knows about them.
var (
	directoryCollections = []string{domain.CollectionAppUsers, domain.CollectionGovtCitizen}

	emailFields  = []string{"Email", "email"}
	nameFields   = []string{"Name", "name"}
	roleFields   = []string{"role", "Role", "designation"}
	walletFields = []string{"wallet_adrdess", "wallet", "Wallet", "wallet_address", "walletAddress"}
)

// DirectoryResolverService implements ports.DirectoryResolver over a document store.
type DirectoryResolverService struct {
	store ports.DocumentStore
}

// NewDirectoryResolver creates a resolver reading from store.
func NewDirectoryResolver(store ports.DocumentStore) *DirectoryResolverService {
	return &DirectoryResolverService{store: store}
}

// ResolveByEmail returns the first identity whose email matches, probing
// the raw and lower-cased value.
func (r *DirectoryResolverService) ResolveByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.resolve(ctx, emailFields, email, nil)
}

// ResolveByWallet returns the first identity holding wallet under any alias.
func (r *DirectoryResolverService) ResolveByWallet(ctx context.Context, wallet string) (*domain.Identity, error) {
	return r.resolve(ctx, walletFields, wallet, nil)
}

// ResolveSurveyor returns the identity for email only if it carries a surveyor role.
func (r *DirectoryResolverService) ResolveSurveyor(ctx context.Context, email string) (*domain.Identity, error) {
	return r.resolve(ctx, emailFields, email, (*domain.Identity).IsSurveyor)
}

// FindOfficers lists every identity with a non-USER role, collections in
// lookup order and documents in id order, without duplicates.
func (r *DirectoryResolverService) FindOfficers(ctx context.Context) ([]domain.Identity, error) {
	var officers []domain.Identity
	seen := make(map[string]bool)

	for _, coll := range directoryCollections {
		for _, field := range roleFields {
			docs, err := r.store.Find(ctx, ports.Query{
				Collection: coll,
				Where:      []ports.Predicate{{Field: field, Op: ports.OpNe, Value: domain.RoleUser}},
				SortBy:     domain.DocIDField,
			})
			if err != nil {
				return nil, fmt.Errorf("finding officers in %s: %w", coll, err)
			}
			for _, doc := range docs {
				id := toIdentity(doc, coll)
				if !id.IsOfficer() || id.Email == "" || seen[id.Email] {
					continue
				}
				seen[id.Email] = true
				officers = append(officers, *id)
			}
		}
	}
	return officers, nil
}

func (r *DirectoryResolverService) resolve(ctx context.Context, fields []string, value string, accept func(*domain.Identity) bool) (*domain.Identity, error) {
	candidates := probeValues(value)
	if len(candidates) == 0 {
		return nil, nil
	}

	for _, coll := range directoryCollections {
		for _, field := range fields {
			docs, err := r.store.Find(ctx, ports.Query{
				Collection: coll,
				Where:      []ports.Predicate{{Field: field, Op: ports.OpIn, Value: candidates}},
				SortBy:     domain.DocIDField,
			})
			if err != nil {
				return nil, fmt.Errorf("resolving %s in %s: %w", field, coll, err)
			}
			for _, doc := range docs {
				id := toIdentity(doc, coll)
				if accept == nil || accept(id) {
					return id, nil
				}
			}
		}
	}
	return nil, nil
}

// probeValues returns the trimmed value and its lower-cased form.
func probeValues(value string) []string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return nil
	}
	if lower := strings.ToLower(raw); lower != raw {
		return []string{raw, lower}
	}
	return []string{raw}
}

// toIdentity maps a directory record onto the canonical identity shape.
func toIdentity(doc domain.Document, source string) *domain.Identity {
	return &domain.Identity{
		Email:  domain.NormalizeEmail(firstString(doc, emailFields)),
		Name:   strings.TrimSpace(firstString(doc, nameFields)),
		Wallet: strings.TrimSpace(firstString(doc, walletFields)),
		Role:   strings.TrimSpace(firstString(doc, roleFields)),
		Source: source,
	}
}

// firstString returns the first non-blank string among fields.
func firstString(doc domain.Document, fields []string) string {
	for _, f := range fields {
		if s, ok := doc.String(f); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
