package domain

import "github.com/google/uuid"

// Notification is a one-time code addressed to one party.
type Notification struct {
	TransferID uuid.UUID
	PropertyID string
	Role       Role
	To         string
	Name       string // display name, may be empty
	Code       string
}
