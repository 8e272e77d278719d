package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-transfer/internal/adapter/http/middleware"
	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
	"estate-transfer/internal/core/ports/mocks"
	"estate-transfer/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }

func newJSONContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func dataTransaction(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "missing data: %v", resp)
	tx, ok := data["transaction"].(map[string]interface{})
	require.True(t, ok, "missing transaction: %v", data)
	return tx
}

func sampleTransfer(status domain.TransferStatus) *domain.Transfer {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Transfer{
		ID:           uuid.New(),
		PropertyID:   "prop-1",
		SellerEmail:  "alice@example.com",
		BuyerEmail:   "bob@example.com",
		SellerWallet: "0xalice",
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// --- Initiate ---

func TestInitiate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingSellerOTP)

	svc.EXPECT().Initiate(gomock.Any(), ports.InitiateRequest{
		PropertyID:  "prop-1",
		SellerEmail: "alice@example.com",
		BuyerEmail:  "bob@example.com",
	}).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/initiate", map[string]string{
		"property_id":  " prop-1 ",
		"seller_email": "alice@example.com ",
		"buyer_email":  "bob@example.com",
	})
	h.Initiate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	tx := dataTransaction(t, resp)
	assert.Equal(t, tr.ID.String(), tx["id"])
	assert.Equal(t, "PENDING_SELLER_OTP", tx["status"])
	assert.NotContains(t, tx, "surveyor")

	id, ok := c.Get(middleware.CtxTransferID)
	require.True(t, ok)
	assert.Equal(t, tr.ID, id)
}

func TestInitiate_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"malformed json", `{"property_id":`},
		{"missing buyer", map[string]string{"property_id": "prop-1", "seller_email": "alice@example.com"}},
		{"bad email", map[string]string{"property_id": "prop-1", "seller_email": "alice", "buyer_email": "bob@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/initiate", tt.body)
			h.Initiate(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "VAL_001", resp["error_code"])
		})
	}
}

func TestInitiate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown seller", apperror.ErrUnknownSeller(), http.StatusForbidden, "AUTH_002"},
		{"property not found", apperror.ErrNotFound("Property"), http.StatusNotFound, "NF_001"},
		{"downstream", apperror.ErrDownstream(errors.New("db down")), http.StatusServiceUnavailable, "SYS_001"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYS_000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockTransferService(ctrl)
			h := NewTransferHandler(svc)
			svc.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/initiate", map[string]string{
				"property_id":  "prop-1",
				"seller_email": "alice@example.com",
				"buyer_email":  "bob@example.com",
			})
			h.Initiate(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["error_code"])
			_, set := c.Get(middleware.CtxTransferID)
			assert.False(t, set)
		})
	}
}

// --- Code verification ---

func TestVerifySellerOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerOTP)

	svc.EXPECT().VerifySellerCode(gomock.Any(), ports.VerifyCodeRequest{
		TransferID: tr.ID,
		Email:      "alice@example.com",
		Code:       "123456",
	}).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/verify-seller-otp", map[string]string{
		"transaction_id": tr.ID.String(),
		"seller_email":   "alice@example.com",
		"otp":            "123456",
	})
	h.VerifySellerOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PENDING_BUYER_OTP", dataTransaction(t, decode(t, w))["status"])
}

func TestVerifySellerOTP_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	id := uuid.New()

	svc.EXPECT().VerifySellerCode(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidCode())

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/verify-seller-otp", map[string]string{
		"transaction_id": id.String(),
		"seller_email":   "alice@example.com",
		"otp":            "000000",
	})
	h.VerifySellerOTP(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "OTP_001", resp["error_code"])
	assert.Equal(t, "Invalid OTP", resp["message"])

	// the id is known even when verification fails, for the audit trail
	got, ok := c.Get(middleware.CtxTransferID)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestVerifySellerOTP_RejectsMalformedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)

	for _, body := range []map[string]string{
		{"transaction_id": "not-a-uuid", "seller_email": "alice@example.com", "otp": "123456"},
		{"transaction_id": uuid.NewString(), "seller_email": "alice@example.com", "otp": "12ab56"},
		{"transaction_id": uuid.NewString(), "seller_email": "alice@example.com"},
	} {
		c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/verify-seller-otp", body)
		h.VerifySellerOTP(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%v", body)
	}
}

func TestVerifyBuyerOTP_IncludesSurveyor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingSurveyorApproval)
	tr.SurveyorEmail = strPtr("sam@survey.gov")
	tr.SurveyorName = strPtr("Sam")

	svc.EXPECT().VerifyBuyerCode(gomock.Any(), ports.VerifyCodeRequest{
		TransferID: tr.ID,
		Email:      "bob@example.com",
		Code:       "654321",
	}).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/verify-buyer-otp", map[string]string{
		"transaction_id": tr.ID.String(),
		"buyer_email":    "bob@example.com",
		"otp":            "654321",
	})
	h.VerifyBuyerOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	tx := dataTransaction(t, decode(t, w))
	assert.Equal(t, "PENDING_SURVEYOR_APPROVAL", tx["status"])
	assert.Equal(t, "sam@survey.gov", tx["surveyor"])
	assert.Equal(t, "Sam", tx["surveyor_name"])
}

func TestVerifyBuyerOTP_NoSurveyor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	svc.EXPECT().VerifyBuyerCode(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotFound("Surveyor"))

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/verify-buyer-otp", map[string]string{
		"transaction_id": uuid.NewString(),
		"buyer_email":    "bob@example.com",
		"otp":            "654321",
	})
	h.VerifyBuyerOTP(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Surveyor not found", decode(t, w)["message"])
}

func TestResendOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerOTP)

	svc.EXPECT().ResendCode(gomock.Any(), tr.ID, "bob@example.com").Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/resend-otp", map[string]string{
		"transaction_id": tr.ID.String(),
		"email":          " bob@example.com",
	})
	h.ResendOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tr.ID.String(), dataTransaction(t, decode(t, w))["id"])
}

// --- Surveyor approval & buyer agreement ---

func TestSurveyorApprove_PassesReportURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerAgreement)

	svc.EXPECT().SurveyorApprove(gomock.Any(), ports.SurveyorApproveRequest{
		TransferID:    tr.ID,
		SurveyorEmail: "sam@survey.gov",
		ReportRef:     strPtr("https://reports.example/r/1"),
	}).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/surveyor-approve", map[string]string{
		"transaction_id": tr.ID.String(),
		"surveyor_email": "sam@survey.gov",
		"report_url":     "https://reports.example/r/1",
	})
	h.SurveyorApprove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PENDING_BUYER_AGREEMENT", dataTransaction(t, decode(t, w))["status"])
}

func TestSurveyorApprove_EmptyReportURLIsOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerAgreement)

	svc.EXPECT().SurveyorApprove(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.SurveyorApproveRequest) (*domain.Transfer, error) {
			assert.Nil(t, req.ReportRef)
			return tr, nil
		},
	)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/surveyor-approve", map[string]string{
		"transaction_id": tr.ID.String(),
		"surveyor_email": "sam@survey.gov",
		"report_url":     "",
	})
	h.SurveyorApprove(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSurveyorApprove_WrongSurveyor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	svc.EXPECT().SurveyorApprove(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnauthorized("surveyor"))

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/surveyor-approve", map[string]string{
		"transaction_id": uuid.NewString(),
		"surveyor_email": "dan@example.com",
	})
	h.SurveyorApprove(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_001", decode(t, w)["error_code"])
}

func TestBuyerAgree_DeclineIsForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusOnHold)

	svc.EXPECT().BuyerAgree(gomock.Any(), ports.BuyerAgreeRequest{
		TransferID: tr.ID,
		BuyerEmail: "bob@example.com",
		Agree:      false,
	}).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/buyer-agree", map[string]interface{}{
		"transaction_id": tr.ID.String(),
		"buyer_email":    "bob@example.com",
		"agree":          false,
	})
	h.BuyerAgree(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ON_HOLD", dataTransaction(t, decode(t, w))["status"])
}

func TestBuyerAgree_MissingDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockTransferService(ctrl))

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/buyer-agree", map[string]interface{}{
		"transaction_id": uuid.NewString(),
		"buyer_email":    "bob@example.com",
	})
	h.BuyerAgree(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Queries ---

func TestGetInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerAgreement)
	tr.DocsLink = strPtr("https://drive.example/prop-1")
	tr.ReportRef = strPtr("https://reports.example/r/1")

	svc.EXPECT().Get(gomock.Any(), tr.ID).Return(tr, nil)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/transactions/"+tr.ID.String()+"/info", nil)
	c.Params = gin.Params{{Key: "id", Value: tr.ID.String()}}
	h.GetInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	tx := dataTransaction(t, decode(t, w))
	assert.Equal(t, "prop-1", tx["property_id"])
	assert.Equal(t, "0xalice", tx["seller_wallet"])
	assert.Equal(t, "https://drive.example/prop-1", tx["docs_link"])
	assert.Equal(t, "https://reports.example/r/1", tx["report_url"])
	assert.Equal(t, "2026-03-01T10:00:00Z", tx["created_at"])
	assert.NotContains(t, tx, "buyer_wallet")
}

func TestGetInfo_MalformedIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockTransferService(ctrl))

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/transactions/xyz/info", nil)
	c.Params = gin.Params{{Key: "id", Value: "xyz"}}
	h.GetInfo(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NF_001", decode(t, w)["error_code"])
}

func TestList_MapsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	tr := sampleTransfer(domain.TransferStatusPendingBuyerOTP)

	svc.EXPECT().ListForUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ListForUserRequest) ([]ports.TransferSummary, error) {
			assert.Equal(t, "bob@example.com", req.Email)
			require.NotNil(t, req.Role)
			assert.Equal(t, domain.RoleBuyer, *req.Role)
			require.NotNil(t, req.Status)
			assert.Equal(t, domain.TransferStatusPendingBuyerOTP, *req.Status)
			return []ports.TransferSummary{{Transfer: *tr, RoleForUser: domain.RoleBuyer, Counterpart: "alice@example.com"}}, nil
		},
	)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/list", map[string]string{
		"user_email": "bob@example.com",
		"role":       "buyer",
		"status":     "pending_buyer_otp",
	})
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	rows := data["transactions"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "buyer", row["role_for_user"])
	assert.Equal(t, "alice@example.com", row["counterpart"])
	assert.Equal(t, tr.ID.String(), row["id"])
}

func TestList_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(svc)
	svc.EXPECT().ListForUser(gomock.Any(), ports.ListForUserRequest{Email: "carol@example.com"}).Return(nil, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/list", map[string]string{
		"user_email": "carol@example.com",
	})
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"transactions":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestList_RejectsUnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransferHandler(mocks.NewMockTransferService(ctrl))

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/transactions/list", map[string]string{
		"user_email": "bob@example.com",
		"role":       "surveyor",
	})
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
