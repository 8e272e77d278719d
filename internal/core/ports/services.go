package ports

import (
	"context"

	"estate-transfer/internal/core/domain"

	"github.com/google/uuid"
)

// --- Infrastructure Ports ---

// Mailer delivers a rendered message to one recipient.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier hands a one-time code to its recipient without blocking.
// It reports whether the notification was accepted for mail delivery;
// a false result means the code went to the operator log instead.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) bool
}

// CodeIssuer generates, verifies and consumes one-time codes.
type CodeIssuer interface {
	// Issue returns a fresh code, invalidating any previous live code for the key.
	Issue(ctx context.Context, transferID uuid.UUID, role domain.Role) (string, error)
	// Verify consumes the live code and returns true iff it equals candidate.
	Verify(ctx context.Context, transferID uuid.UUID, role domain.Role, candidate string) (bool, error)
	// Restore reinstates a consumed code after a failed transition.
	Restore(ctx context.Context, transferID uuid.UUID, role domain.Role, code string) error
}

// DirectoryResolver maps external identity records onto domain.Identity.
// Lookups return nil, nil when nothing matches.
type DirectoryResolver interface {
	ResolveByEmail(ctx context.Context, email string) (*domain.Identity, error)
	ResolveByWallet(ctx context.Context, wallet string) (*domain.Identity, error)
	// FindOfficers lists identities with a non-USER role, in directory order.
	FindOfficers(ctx context.Context) ([]domain.Identity, error)
	// ResolveSurveyor returns the identity only if it carries a surveyor role.
	ResolveSurveyor(ctx context.Context, email string) (*domain.Identity, error)
}

// PropertyRegistry reads properties and manages their sale listings.
type PropertyRegistry interface {
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	// SupportingDocs returns nil, nil when no documents are on file.
	SupportingDocs(ctx context.Context, propertyID string) (*string, error)
	// Delist marks the sale listing sold. A missing listing is not an error.
	Delist(ctx context.Context, propertyID string) error
}

// SurveyorSelector picks the surveyor bound at buyer verification.
// It returns nil, nil when no surveyor is eligible.
type SurveyorSelector interface {
	Select(ctx context.Context) (*domain.Identity, error)
}

// --- Service Ports (Business Logic) ---

// TransferService drives the transfer state machine.
type TransferService interface {
	Initiate(ctx context.Context, req InitiateRequest) (*domain.Transfer, error)
	VerifySellerCode(ctx context.Context, req VerifyCodeRequest) (*domain.Transfer, error)
	VerifyBuyerCode(ctx context.Context, req VerifyCodeRequest) (*domain.Transfer, error)
	ResendCode(ctx context.Context, transferID uuid.UUID, email string) (*domain.Transfer, error)
	SurveyorApprove(ctx context.Context, req SurveyorApproveRequest) (*domain.Transfer, error)
	BuyerAgree(ctx context.Context, req BuyerAgreeRequest) (*domain.Transfer, error)
	Get(ctx context.Context, transferID uuid.UUID) (*domain.Transfer, error)
	ListForUser(ctx context.Context, req ListForUserRequest) ([]TransferSummary, error)
	ListForSurveyor(ctx context.Context, email string) ([]domain.Transfer, error)
	SurveyorProfile(ctx context.Context, email string) (*domain.Identity, error)
}

// InitiateRequest holds validated input for starting a transfer.
type InitiateRequest struct {
	PropertyID  string
	SellerEmail string
	BuyerEmail  string
}

// VerifyCodeRequest holds a party's one-time code submission.
type VerifyCodeRequest struct {
	TransferID uuid.UUID
	Email      string
	Code       string
}

// SurveyorApproveRequest holds the surveyor's approval.
type SurveyorApproveRequest struct {
	TransferID    uuid.UUID
	SurveyorEmail string
	ReportRef     *string
}

// BuyerAgreeRequest holds the buyer's final decision.
type BuyerAgreeRequest struct {
	TransferID uuid.UUID
	BuyerEmail string
	Agree      bool
}

// ListForUserRequest filters a party's transfers.
type ListForUserRequest struct {
	Email  string
	Role   *domain.Role
	Status *domain.TransferStatus
}

// TransferSummary is one row of a party's transfer list.
type TransferSummary struct {
	Transfer    domain.Transfer
	RoleForUser domain.Role
	Counterpart string
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
