package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records every workflow write, successful or not, with the
// response status as its outcome. Handlers set CtxTransferID once the
// transaction id is known.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}
		action := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		var transferID *uuid.UUID
		resourceID := ""
		if v, exists := c.Get(CtxTransferID); exists {
			if id, ok := v.(uuid.UUID); ok {
				transferID = &id
				resourceID = id.String()
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			TransferID:   transferID,
			Action:       action,
			ResourceType: "transaction",
			ResourceID:   resourceID,
			Outcome:      c.Writer.Status(),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route string) domain.AuditAction {
	switch route {
	case "/api/v1/transactions/initiate":
		return domain.AuditActionInitiate
	case "/api/v1/transactions/verify-seller-otp":
		return domain.AuditActionVerifySeller
	case "/api/v1/transactions/verify-buyer-otp":
		return domain.AuditActionVerifyBuyer
	case "/api/v1/transactions/resend-otp":
		return domain.AuditActionResendCode
	case "/api/v1/transactions/surveyor-approve":
		return domain.AuditActionSurveyorApprove
	case "/api/v1/transactions/buyer-agree":
		return domain.AuditActionBuyerAgree
	}
	return ""
}
