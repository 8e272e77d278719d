package service

import (
	"context"
	"fmt"
	"strings"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// propertyKeyFields are tried after a direct id lookup; the second is a
// misspelling present in legacy records.
var propertyKeyFields = []string{"property_id", "propert_id"}

// PropertyRegistryService implements ports.PropertyRegistry over a document store.
type PropertyRegistryService struct {
	store ports.DocumentStore
}

// NewPropertyRegistry creates a registry reading from store.
func NewPropertyRegistry(store ports.DocumentStore) *PropertyRegistryService {
	return &PropertyRegistryService{store: store}
}

// GetProperty looks the property up by document id, then by its key fields.
func (r *PropertyRegistryService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	doc, err := r.store.Get(ctx, domain.CollectionProperties, id)
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}

	for _, field := range propertyKeyFields {
		if doc != nil {
			break
		}
		doc, err = r.findOne(ctx, domain.CollectionProperties, ports.Eq(field, id))
		if err != nil {
			return nil, fmt.Errorf("find property %s by %s: %w", id, field, err)
		}
	}
	if doc == nil {
		return nil, nil
	}

	return &domain.Property{
		ID:          id,
		OwnerWallet: strings.TrimSpace(firstString(doc, walletFields)),
		Raw:         doc,
	}, nil
}

// SupportingDocs returns the property's document folder link.
func (r *PropertyRegistryService) SupportingDocs(ctx context.Context, propertyID string) (*string, error) {
	doc, err := r.findOne(ctx, domain.CollectionPropDocs, ports.Eq("property_id", propertyID))
	if err != nil {
		return nil, fmt.Errorf("find docs for %s: %w", propertyID, err)
	}
	if doc == nil {
		return nil, nil
	}
	link, ok := doc.String("gdrive_link")
	if !ok || strings.TrimSpace(link) == "" {
		return nil, nil
	}
	return &link, nil
}

// Delist marks every active sale listing for the property sold.
func (r *PropertyRegistryService) Delist(ctx context.Context, propertyID string) error {
	docs, err := r.store.Find(ctx, ports.Query{
		Collection: domain.CollectionForSale,
		Where: []ports.Predicate{
			ports.Eq("property_id", propertyID),
			ports.Eq("status", domain.ListingStatusActive),
		},
	})
	if err != nil {
		return fmt.Errorf("find listings for %s: %w", propertyID, err)
	}

	for _, doc := range docs {
		doc["status"] = domain.ListingStatusSold
		if err := r.store.Put(ctx, domain.CollectionForSale, doc.ID(), doc); err != nil {
			return fmt.Errorf("delist %s: %w", propertyID, err)
		}
	}
	return nil
}

func (r *PropertyRegistryService) findOne(ctx context.Context, collection string, where ...ports.Predicate) (domain.Document, error) {
	docs, err := r.store.Find(ctx, ports.Query{Collection: collection, Where: where, Limit: 1})
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return docs[0], nil
}
