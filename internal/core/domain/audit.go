package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionInitiate        AuditAction = "INITIATE"
	AuditActionVerifySeller    AuditAction = "VERIFY_SELLER_OTP"
	AuditActionVerifyBuyer     AuditAction = "VERIFY_BUYER_OTP"
	AuditActionResendCode      AuditAction = "RESEND_OTP"
	AuditActionSurveyorApprove AuditAction = "SURVEYOR_APPROVE"
	AuditActionBuyerAgree      AuditAction = "BUYER_AGREE"
)

// AuditLog records a single audited state-changing request.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	TransferID   *uuid.UUID  `json:"transfer_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Outcome      int         `json:"outcome"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
