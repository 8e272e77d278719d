package handler

import (
	"estate-transfer/internal/adapter/http/dto"
	"estate-transfer/internal/adapter/http/middleware"
	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
	"estate-transfer/pkg/apperror"
	"estate-transfer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles the transfer workflow endpoints.
type TransferHandler struct {
	svc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc ports.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// Initiate handles POST /api/v1/transactions/initiate.
func (h *TransferHandler) Initiate(c *gin.Context) {
	var req dto.InitiateRequest
	if !bind(c, &req) {
		return
	}

	t, err := h.svc.Initiate(c.Request.Context(), ports.InitiateRequest{
		PropertyID:  req.PropertyID,
		SellerEmail: req.SellerEmail,
		BuyerEmail:  req.BuyerEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxTransferID, t.ID)
	response.Created(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// VerifySellerOTP handles POST /api/v1/transactions/verify-seller-otp.
func (h *TransferHandler) VerifySellerOTP(c *gin.Context) {
	var req dto.VerifySellerOTPRequest
	if !bind(c, &req) {
		return
	}
	id := transferID(c, req.TransactionID)

	t, err := h.svc.VerifySellerCode(c.Request.Context(), ports.VerifyCodeRequest{
		TransferID: id,
		Email:      req.SellerEmail,
		Code:       req.OTP,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// VerifyBuyerOTP handles POST /api/v1/transactions/verify-buyer-otp.
// The response names the surveyor bound by this step.
func (h *TransferHandler) VerifyBuyerOTP(c *gin.Context) {
	var req dto.VerifyBuyerOTPRequest
	if !bind(c, &req) {
		return
	}
	id := transferID(c, req.TransactionID)

	t, err := h.svc.VerifyBuyerCode(c.Request.Context(), ports.VerifyCodeRequest{
		TransferID: id,
		Email:      req.BuyerEmail,
		Code:       req.OTP,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// ResendOTP handles POST /api/v1/transactions/resend-otp.
func (h *TransferHandler) ResendOTP(c *gin.Context) {
	var req dto.ResendOTPRequest
	if !bind(c, &req) {
		return
	}
	id := transferID(c, req.TransactionID)

	t, err := h.svc.ResendCode(c.Request.Context(), id, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// SurveyorApprove handles POST /api/v1/transactions/surveyor-approve.
func (h *TransferHandler) SurveyorApprove(c *gin.Context) {
	var req dto.SurveyorApproveRequest
	if !bind(c, &req) {
		return
	}
	id := transferID(c, req.TransactionID)

	reportRef := req.ReportURL
	if reportRef != nil && *reportRef == "" {
		reportRef = nil
	}

	t, err := h.svc.SurveyorApprove(c.Request.Context(), ports.SurveyorApproveRequest{
		TransferID:    id,
		SurveyorEmail: req.SurveyorEmail,
		ReportRef:     reportRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// BuyerAgree handles POST /api/v1/transactions/buyer-agree.
func (h *TransferHandler) BuyerAgree(c *gin.Context) {
	var req dto.BuyerAgreeRequest
	if !bind(c, &req) {
		return
	}
	id := transferID(c, req.TransactionID)

	t, err := h.svc.BuyerAgree(c.Request.Context(), ports.BuyerAgreeRequest{
		TransferID: id,
		BuyerEmail: req.BuyerEmail,
		Agree:      *req.Agree,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionRef(t)})
}

// GetInfo handles GET /api/v1/transactions/:id/info.
func (h *TransferHandler) GetInfo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// no transfer can carry a malformed id
		response.Error(c, apperror.ErrNotFound("Transaction"))
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionEnvelope{Transaction: dto.NewTransactionResponse(t)})
}

// List handles POST /api/v1/transactions/list.
func (h *TransferHandler) List(c *gin.Context) {
	var req dto.ListTransactionsRequest
	if !bind(c, &req) {
		return
	}

	params := ports.ListForUserRequest{Email: req.UserEmail}
	if req.Role != nil && *req.Role != "" {
		role := domain.Role(*req.Role)
		params.Role = &role
	}
	if req.Status != nil && *req.Status != "" {
		st, _ := domain.ParseTransferStatus(*req.Status)
		params.Status = &st
	}

	rows, err := h.svc.ListForUser(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionListResponse{
		Transactions: dto.NewUserTransactionList(rows),
		Count:        len(rows),
	})
}

// bind decodes and validates the JSON body, then trims its strings.
// On failure it writes a VAL_001 response and returns false.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// transferID parses an id already checked by the uuid binding tag and
// exposes it to the audit and logging middleware.
func transferID(c *gin.Context, raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	c.Set(middleware.CtxTransferID, id)
	return id
}
