package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestTransfer() *domain.Transfer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transfer{
		ID:           uuid.New(),
		PropertyID:   "prop-1",
		SellerEmail:  "alice@example.com",
		BuyerEmail:   "bob@example.com",
		SellerWallet: "0xalice",
		BuyerWallet:  strPtr("0xbob"),
		DocsLink:     strPtr("https://drive.example/prop-1"),
		Status:       domain.TransferStatusPendingSellerOTP,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func transferCols() []string {
	return []string{"id", "property_id", "seller_email", "buyer_email", "seller_wallet", "buyer_wallet",
		"surveyor_email", "surveyor_name", "docs_link", "report_url", "status", "created_at", "updated_at"}
}

func transferRow(t *domain.Transfer) *pgxmock.Rows {
	return pgxmock.NewRows(transferCols()).AddRow(
		t.ID, t.PropertyID, t.SellerEmail, t.BuyerEmail, t.SellerWallet, t.BuyerWallet,
		t.SurveyorEmail, t.SurveyorName, t.DocsLink, t.ReportRef, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)
}

func TestTransferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	mock.ExpectExec("INSERT INTO transfers").
		WithArgs(
			tr.ID, tr.PropertyID, tr.SellerEmail, tr.BuyerEmail, tr.SellerWallet, tr.BuyerWallet,
			tr.SurveyorEmail, tr.SurveyorName, tr.DocsLink, tr.ReportRef, tr.Status,
			tr.CreatedAt, tr.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), tr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_Create_AssignsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	tr.ID = uuid.Nil

	args := make([]interface{}, 13)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectExec("INSERT INTO transfers").
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), tr))
	assert.NotEqual(t, uuid.Nil, tr.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()

	mock.ExpectQuery("SELECT .+ FROM transfers WHERE id = \\$1").
		WithArgs(tr.ID).
		WillReturnRows(transferRow(tr))

	got, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tr.ID, got.ID)
	assert.Equal(t, tr.Status, got.Status)
	assert.Equal(t, "0xbob", *got.BuyerWallet)
	assert.Nil(t, got.SurveyorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transfers WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(transferCols()))

	got, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	later := tr.UpdatedAt.Add(time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transfers WHERE id = \\$1 FOR UPDATE").
		WithArgs(tr.ID).
		WillReturnRows(transferRow(tr))
	mock.ExpectExec("UPDATE transfers SET").
		WithArgs(tr.ID, tr.BuyerWallet, tr.SurveyorEmail, tr.SurveyorName,
			tr.DocsLink, tr.ReportRef, domain.TransferStatusPendingBuyerOTP, later).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), tr.ID, func(t *domain.Transfer) error {
		return t.Advance(domain.TransferStatusPendingBuyerOTP, later)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusPendingBuyerOTP, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_Update_FnErrorRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	boom := errors.New("invalid code")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FOR UPDATE").
		WithArgs(tr.ID).
		WillReturnRows(transferRow(tr))
	mock.ExpectRollback()

	_, err = repo.Update(context.Background(), tr.ID, func(*domain.Transfer) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FOR UPDATE").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(transferCols()))
	mock.ExpectRollback()

	_, err = repo.Update(context.Background(), id, func(*domain.Transfer) error { return nil })
	assert.ErrorIs(t, err, ports.ErrTransferNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_List(t *testing.T) {
	buyer := domain.RoleBuyer
	pending := domain.TransferStatusPendingSurveyorApproval

	tests := []struct {
		name   string
		params ports.TransferListParams
		query  string
		args   []any
	}{
		{
			name:   "either role",
			params: ports.TransferListParams{PartyEmail: "Bob@Example.com"},
			query:  `WHERE \(seller_email = \$1 OR buyer_email = \$1\) ORDER BY updated_at DESC`,
			args:   []any{"bob@example.com"},
		},
		{
			name:   "buyer with status",
			params: ports.TransferListParams{PartyEmail: "bob@example.com", Role: &buyer, Status: &pending},
			query:  `WHERE buyer_email = \$1 AND status = \$2`,
			args:   []any{"bob@example.com", pending},
		},
		{
			name:   "surveyor queue",
			params: ports.TransferListParams{SurveyorEmail: "sam@survey.gov", Status: &pending},
			query:  `WHERE surveyor_email = \$1 AND status = \$2`,
			args:   []any{"sam@survey.gov", pending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewTransferRepo(mock)
			tr := newTestTransfer()

			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(transferRow(tr))

			got, err := repo.List(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tr.ID, got[0].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
