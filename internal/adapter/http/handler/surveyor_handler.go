package handler

import (
	"estate-transfer/internal/adapter/http/dto"
	"estate-transfer/internal/core/ports"
	"estate-transfer/pkg/response"

	"github.com/gin-gonic/gin"
)

// SurveyorHandler serves surveyor-facing lookups.
type SurveyorHandler struct {
	svc ports.TransferService
}

func NewSurveyorHandler(svc ports.TransferService) *SurveyorHandler {
	return &SurveyorHandler{svc: svc}
}

// Login handles POST /api/v1/surveyor/login. It only confirms that the
// email belongs to a surveyor and returns the directory profile.
func (h *SurveyorHandler) Login(c *gin.Context) {
	var req dto.SurveyorRequest
	if !bind(c, &req) {
		return
	}

	id, err := h.svc.SurveyorProfile(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProfileResponse{Profile: dto.NewProfileView(id)})
}

// Pending handles POST /api/v1/surveyor/pending.
func (h *SurveyorHandler) Pending(c *gin.Context) {
	var req dto.SurveyorRequest
	if !bind(c, &req) {
		return
	}

	ts, err := h.svc.ListForSurveyor(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionListResponse{
		Transactions: dto.NewTransactionList(ts),
		Count:        len(ts),
	})
}
