package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `id, property_id, seller_email, buyer_email, seller_wallet, buyer_wallet,
		surveyor_email, surveyor_name, docs_link, report_url, status, created_at, updated_at`

// TransferRepo implements ports.TransferRepository. Update locks the row
// with SELECT ... FOR UPDATE for the duration of the caller's mutation.
type TransferRepo struct {
	pool Pool
	tx   *Transactor
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool, tx: NewTransactor(pool)}
}

// Create inserts a new transfer, assigning its id when unset.
func (r *TransferRepo) Create(ctx context.Context, t *domain.Transfer) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	query := `INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.PropertyID, t.SellerEmail, t.BuyerEmail, t.SellerWallet, t.BuyerWallet,
		t.SurveyorEmail, t.SurveyorName, t.DocsLink, t.ReportRef, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID fetches a transfer by UUID.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	return scanTransfer(r.pool.QueryRow(ctx, query, id))
}

// Update runs fn on the locked row and writes back the mutable columns.
func (r *TransferRepo) Update(ctx context.Context, id uuid.UUID, fn func(t *domain.Transfer) error) (*domain.Transfer, error) {
	var out *domain.Transfer
	err := r.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1 FOR UPDATE`
		t, err := scanTransfer(tx.QueryRow(ctx, query, id))
		if err != nil {
			return err
		}
		if t == nil {
			return ports.ErrTransferNotFound
		}

		if err := fn(t); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE transfers SET buyer_wallet = $2, surveyor_email = $3, surveyor_name = $4,
			docs_link = $5, report_url = $6, status = $7, updated_at = $8 WHERE id = $1`,
			t.ID, t.BuyerWallet, t.SurveyorEmail, t.SurveyorName,
			t.DocsLink, t.ReportRef, t.Status, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update transfer: %w", err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List fetches transfers matching params, newest update first.
func (r *TransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.PartyEmail != "" {
		email := domain.NormalizeEmail(params.PartyEmail)
		switch {
		case params.Role == nil:
			conditions = append(conditions, fmt.Sprintf("(seller_email = $%d OR buyer_email = $%d)", argIdx, argIdx))
		case *params.Role == domain.RoleSeller:
			conditions = append(conditions, fmt.Sprintf("seller_email = $%d", argIdx))
		default:
			conditions = append(conditions, fmt.Sprintf("buyer_email = $%d", argIdx))
		}
		args = append(args, email)
		argIdx++
	}
	if params.SurveyorEmail != "" {
		conditions = append(conditions, fmt.Sprintf("surveyor_email = $%d", argIdx))
		args = append(args, domain.NormalizeEmail(params.SurveyorEmail))
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
	}

	query := `SELECT ` + transferColumns + ` FROM transfers`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}
	return transfers, nil
}

// scanTransfer scans one row; a missing row yields nil, nil.
func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	t := &domain.Transfer{}
	err := row.Scan(
		&t.ID, &t.PropertyID, &t.SellerEmail, &t.BuyerEmail, &t.SellerWallet, &t.BuyerWallet,
		&t.SurveyorEmail, &t.SurveyorName, &t.DocsLink, &t.ReportRef, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transfer: %w", err)
	}
	return t, nil
}
