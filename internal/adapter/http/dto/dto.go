package dto

import (
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// InitiateRequest is the request body for starting a transfer.
type InitiateRequest struct {
	PropertyID  string `json:"property_id" binding:"required,max=128,safe_id"`
	SellerEmail string `json:"seller_email" binding:"required,party_email"`
	BuyerEmail  string `json:"buyer_email" binding:"required,party_email"`
}

// VerifySellerOTPRequest is the seller's one-time code submission.
type VerifySellerOTPRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	SellerEmail   string `json:"seller_email" binding:"required,party_email"`
	OTP           string `json:"otp" binding:"required,otp"`
}

// VerifyBuyerOTPRequest is the buyer's one-time code submission.
type VerifyBuyerOTPRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	BuyerEmail    string `json:"buyer_email" binding:"required,party_email"`
	OTP           string `json:"otp" binding:"required,otp"`
}

// ResendOTPRequest asks for a fresh code for the pending party.
type ResendOTPRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	Email         string `json:"email" binding:"required,party_email"`
}

// SurveyorApproveRequest is the bound surveyor's approval.
type SurveyorApproveRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required,uuid"`
	SurveyorEmail string  `json:"surveyor_email" binding:"required,party_email"`
	ReportURL     *string `json:"report_url,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// BuyerAgreeRequest is the buyer's final decision. Agree is a pointer so
// that an explicit false passes the required check.
type BuyerAgreeRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	BuyerEmail    string `json:"buyer_email" binding:"required,party_email"`
	Agree         *bool  `json:"agree" binding:"required"`
}

// ListTransactionsRequest filters the caller's transfers.
type ListTransactionsRequest struct {
	UserEmail string  `json:"user_email" binding:"required,party_email"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=seller buyer"`
	Status    *string `json:"status,omitempty" binding:"omitempty,transfer_status"`
}

// SurveyorRequest identifies a surveyor.
type SurveyorRequest struct {
	Email string `json:"email" binding:"required,party_email"`
}

// TransactionRef is the short form returned by workflow operations.
// Surveyor carries the bound surveyor's email.
type TransactionRef struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Surveyor     string `json:"surveyor,omitempty"`
	SurveyorName string `json:"surveyor_name,omitempty"`
}

// TransactionEnvelope wraps a single transaction in response data.
type TransactionEnvelope struct {
	Transaction interface{} `json:"transaction"`
}

// TransactionResponse is the full view of a transfer.
type TransactionResponse struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"property_id"`
	SellerEmail   string  `json:"seller_email"`
	BuyerEmail    string  `json:"buyer_email"`
	SellerWallet  string  `json:"seller_wallet"`
	BuyerWallet   *string `json:"buyer_wallet,omitempty"`
	SurveyorEmail *string `json:"surveyor_email,omitempty"`
	SurveyorName  *string `json:"surveyor_name,omitempty"`
	DocsLink      *string `json:"docs_link,omitempty"`
	ReportURL     *string `json:"report_url,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// UserTransactionResponse is one row of a party's transfer list.
type UserTransactionResponse struct {
	TransactionResponse
	RoleForUser string `json:"role_for_user"`
	Counterpart string `json:"counterpart"`
}

// TransactionListResponse wraps a transfer list.
type TransactionListResponse struct {
	Transactions interface{} `json:"transactions"`
	Count        int         `json:"count"`
}

// ProfileResponse is a surveyor's directory profile.
type ProfileResponse struct {
	Profile ProfileView `json:"profile"`
}

// ProfileView is the public part of a directory identity.
type ProfileView struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Wallet string `json:"wallet,omitempty"`
}

// NewTransactionRef builds the short form, including the surveyor once bound.
func NewTransactionRef(t *domain.Transfer) TransactionRef {
	ref := TransactionRef{ID: t.ID.String(), Status: string(t.Status)}
	if t.SurveyorEmail != nil {
		ref.Surveyor = *t.SurveyorEmail
	}
	if t.SurveyorName != nil {
		ref.SurveyorName = *t.SurveyorName
	}
	return ref
}

// NewTransactionResponse builds the full view of t.
func NewTransactionResponse(t *domain.Transfer) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		PropertyID:    t.PropertyID,
		SellerEmail:   t.SellerEmail,
		BuyerEmail:    t.BuyerEmail,
		SellerWallet:  t.SellerWallet,
		BuyerWallet:   t.BuyerWallet,
		SurveyorEmail: t.SurveyorEmail,
		SurveyorName:  t.SurveyorName,
		DocsLink:      t.DocsLink,
		ReportURL:     t.ReportRef,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewUserTransactionList converts summaries for the list endpoint.
func NewUserTransactionList(rows []ports.TransferSummary) []UserTransactionResponse {
	out := make([]UserTransactionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, UserTransactionResponse{
			TransactionResponse: NewTransactionResponse(&rows[i].Transfer),
			RoleForUser:         string(rows[i].RoleForUser),
			Counterpart:         rows[i].Counterpart,
		})
	}
	return out
}

// NewTransactionList converts transfers for the list endpoints.
func NewTransactionList(ts []domain.Transfer) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for i := range ts {
		out = append(out, NewTransactionResponse(&ts[i]))
	}
	return out
}

// NewProfileView hides the directory source of an identity.
func NewProfileView(id *domain.Identity) ProfileView {
	return ProfileView{Email: id.Email, Name: id.Name, Role: id.Role, Wallet: id.Wallet}
}
