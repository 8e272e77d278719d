package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransferStatus is the lifecycle state of a property transfer.
type TransferStatus string

const (
	// TransferStatusInitiated is the notional origin of every transfer. It is never persisted.
	TransferStatusInitiated               TransferStatus = "INITIATED"
	TransferStatusPendingSellerOTP        TransferStatus = "PENDING_SELLER_OTP"
	TransferStatusPendingBuyerOTP         TransferStatus = "PENDING_BUYER_OTP"
	TransferStatusPendingSurveyorApproval TransferStatus = "PENDING_SURVEYOR_APPROVAL"
	TransferStatusPendingBuyerAgreement   TransferStatus = "PENDING_BUYER_AGREEMENT"
	TransferStatusPendingAuthenticator    TransferStatus = "PENDING_AUTHENTICATOR_APPROVAL"
	TransferStatusOnHold                  TransferStatus = "ON_HOLD"
)

// ErrIllegalTransition is wrapped by ValidateTransition failures.
var ErrIllegalTransition = errors.New("illegal transfer transition")

// legalTransitions maps each state to the states it may move to.
// Terminal states have no outgoing transitions.
var legalTransitions = map[TransferStatus]map[TransferStatus]bool{
	TransferStatusInitiated: {
		TransferStatusPendingSellerOTP: true,
	},
	TransferStatusPendingSellerOTP: {
		TransferStatusPendingBuyerOTP: true,
	},
	TransferStatusPendingBuyerOTP: {
		TransferStatusPendingSurveyorApproval: true,
	},
	TransferStatusPendingSurveyorApproval: {
		TransferStatusPendingBuyerAgreement: true,
	},
	TransferStatusPendingBuyerAgreement: {
		TransferStatusPendingAuthenticator: true,
		TransferStatusOnHold:               true,
	},
	TransferStatusPendingAuthenticator: {},
	TransferStatusOnHold:               {},
}

// ParseTransferStatus returns the status named by s, or false if s is not a known status.
func ParseTransferStatus(s string) (TransferStatus, bool) {
	st := TransferStatus(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := legalTransitions[st]
	return st, ok
}

// ValidateTransition returns nil if moving from -> to is allowed.
func ValidateTransition(from, to TransferStatus) error {
	next, ok := legalTransitions[from]
	if !ok {
		return fmt.Errorf("%w: unknown source state %s", ErrIllegalTransition, from)
	}
	if !next[to] {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible from s.
func (s TransferStatus) IsTerminal() bool {
	next, ok := legalTransitions[s]
	return ok && len(next) == 0
}

// PendingCodeRole returns the party whose one-time code the status is waiting on.
func (s TransferStatus) PendingCodeRole() (Role, bool) {
	switch s {
	case TransferStatusPendingSellerOTP:
		return RoleSeller, true
	case TransferStatusPendingBuyerOTP:
		return RoleBuyer, true
	default:
		return "", false
	}
}

// Role identifies a party of a transfer that holds one-time codes.
type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleBuyer
}

// Transfer is one property-ownership transfer between a seller and a buyer.
type Transfer struct {
	ID            uuid.UUID      `json:"id"`
	PropertyID    string         `json:"property_id"`
	SellerEmail   string         `json:"seller_email"`
	BuyerEmail    string         `json:"buyer_email"`
	SellerWallet  string         `json:"seller_wallet"`
	BuyerWallet   *string        `json:"buyer_wallet,omitempty"`
	SurveyorEmail *string        `json:"surveyor_email,omitempty"`
	SurveyorName  *string        `json:"surveyor_name,omitempty"`
	DocsLink      *string        `json:"docs_link,omitempty"`
	ReportRef     *string        `json:"report_url,omitempty"`
	Status        TransferStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Advance moves the transfer to next, stamping UpdatedAt.
func (t *Transfer) Advance(next TransferStatus, now time.Time) error {
	if err := ValidateTransition(t.Status, next); err != nil {
		return err
	}
	t.Status = next
	t.UpdatedAt = now
	return nil
}

// PartyEmail returns the email bound to role.
func (t *Transfer) PartyEmail(role Role) string {
	if role == RoleSeller {
		return t.SellerEmail
	}
	return t.BuyerEmail
}

// IsSeller reports whether email identifies the seller.
func (t *Transfer) IsSeller(email string) bool {
	return SameParty(t.SellerEmail, email)
}

// IsBuyer reports whether email identifies the buyer.
func (t *Transfer) IsBuyer(email string) bool {
	return SameParty(t.BuyerEmail, email)
}

// IsSurveyor reports whether email identifies the bound surveyor.
func (t *Transfer) IsSurveyor(email string) bool {
	return t.SurveyorEmail != nil && SameParty(*t.SurveyorEmail, email)
}

// RoleFor returns the role email plays in the transfer.
func (t *Transfer) RoleFor(email string) (Role, bool) {
	switch {
	case t.IsSeller(email):
		return RoleSeller, true
	case t.IsBuyer(email):
		return RoleBuyer, true
	default:
		return "", false
	}
}

// Counterpart returns the other party's email.
func (t *Transfer) Counterpart(role Role) string {
	if role == RoleSeller {
		return t.BuyerEmail
	}
	return t.SellerEmail
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameParty compares two emails under the single identity-matching policy.
func SameParty(a, b string) bool {
	na := NormalizeEmail(a)
	return na != "" && na == NormalizeEmail(b)
}
