package domain

import "strings"

// Directory collections consulted for identities, in lookup order.
const (
	CollectionAppUsers    = "app-users"
	CollectionGovtCitizen = "govt-citizen"
)

// Property collections.
const (
	CollectionProperties = "properties"
	CollectionPropDocs   = "prop-docs"
	CollectionForSale    = "registered_for_sale"
)

// Sale listing states.
const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
)

// RoleUser is the directory role of an ordinary citizen.
const RoleUser = "USER"

// Identity is the canonical shape of a directory record.
type Identity struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Wallet string `json:"wallet,omitempty"`
	Role   string `json:"role,omitempty"`
	Source string `json:"source"`
}

// IsOfficer reports whether the identity carries any non-USER role.
func (i *Identity) IsOfficer() bool {
	r := strings.ToUpper(strings.TrimSpace(i.Role))
	return r != "" && r != RoleUser
}

// IsSurveyor reports whether the identity's role names a surveyor.
// Both spellings found in the directory are accepted.
func (i *Identity) IsSurveyor() bool {
	r := strings.ToUpper(strings.Join(strings.Fields(i.Role), ""))
	return r == "SURVEYOR" || r == "SURVEYER"
}

// Property is a registered property with its owner wallet normalized.
type Property struct {
	ID          string         `json:"id"`
	OwnerWallet string         `json:"owner_wallet,omitempty"`
	Raw         map[string]any `json:"-"`
}

// DocIDField is the key under which documents carry their id.
const DocIDField = "_id"

// Document is a schemaless external record.
type Document map[string]any

// ID returns the document id, or "" if absent.
func (d Document) ID() string {
	s, _ := d[DocIDField].(string)
	return s
}

// String returns the field as a string. Numbers are not coerced.
func (d Document) String(field string) (string, bool) {
	s, ok := d[field].(string)
	return s, ok
}
