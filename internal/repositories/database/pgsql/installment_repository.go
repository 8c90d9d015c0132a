package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	"github.com/sitara-travels/lms-backend/internal/models"
)

type PgxInstallmentRepository struct {
	BaseRepository
}

// newPgxInstallmentRepository creates a new repository for installment data.
func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxInstallmentRepository implements portsrepo.InstallmentRepositoryFacade
var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

func toDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID:     m.InstallmentID,
		LoanTransactionID: m.LoanTransactionID,
		InstallmentNumber: m.InstallmentNumber,
		DueDate:           m.DueDate,
		Amount:            m.Amount,
		Status:            domain.InstallmentStatus(m.Status),
		AmountPaid:        m.AmountPaid,
		PaymentMethod:     m.PaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const installmentColumns = `installment_id, loan_transaction_id, installment_number, due_date, amount, status, amount_paid, payment_method, created_at, created_by, last_updated_at, last_updated_by`

func scanInstallment(row pgx.Row) (*domain.Installment, error) {
	var m models.Installment
	var paymentMethod sql.NullString
	err := row.Scan(
		&m.InstallmentID,
		&m.LoanTransactionID,
		&m.InstallmentNumber,
		&m.DueDate,
		&m.Amount,
		&m.Status,
		&m.AmountPaid,
		&paymentMethod,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.PaymentMethod = paymentMethod.String
	d := toDomainInstallment(m)
	return &d, nil
}

// FindInstallmentByID retrieves one installment.
func (r *PgxInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE installment_id = $1;`

	inst, err := scanInstallment(r.Pool.QueryRow(ctx, query, installmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find installment by ID %s: %w", installmentID, err)
	}
	return inst, nil
}

// FindInstallmentsByTransactionID retrieves a transaction's plan ordered by
// installment number.
func (r *PgxInstallmentRepository) FindInstallmentsByTransactionID(ctx context.Context, transactionID string) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE loan_transaction_id = $1 ORDER BY installment_number;`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	return collectInstallments(rows)
}

// ListAllInstallments retrieves every installment, for maintenance batches.
func (r *PgxInstallmentRepository) ListAllInstallments(ctx context.Context) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments ORDER BY loan_transaction_id, installment_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all installments: %w", err)
	}
	defer rows.Close()

	return collectInstallments(rows)
}

func collectInstallments(rows pgx.Rows) ([]domain.Installment, error) {
	installments := []domain.Installment{}
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		installments = append(installments, *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}
	return installments, nil
}

// SaveInstallments inserts a freshly generated plan in one database transaction.
func (r *PgxInstallmentRepository) SaveInstallments(ctx context.Context, installments []domain.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO installments (installment_id, loan_transaction_id, installment_number, due_date, amount, status, amount_paid, payment_method, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, inst := range installments {
		var paymentMethod sql.NullString
		if inst.PaymentMethod != "" {
			paymentMethod = sql.NullString{String: inst.PaymentMethod, Valid: true}
		}
		_, err := tx.Exec(ctx, query,
			inst.InstallmentID,
			inst.LoanTransactionID,
			inst.InstallmentNumber,
			inst.DueDate,
			inst.Amount,
			string(inst.Status),
			inst.AmountPaid,
			paymentMethod,
			inst.CreatedAt,
			inst.CreatedBy,
			inst.LastUpdatedAt,
			inst.LastUpdatedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: installment %d already exists for transaction %s", apperrors.ErrDuplicate, inst.InstallmentNumber, inst.LoanTransactionID)
			}
			return fmt.Errorf("failed to save installment %s: %w", inst.InstallmentID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateSchedule changes due date and scheduled amount of one installment.
func (r *PgxInstallmentRepository) UpdateSchedule(ctx context.Context, installmentID string, dueDate time.Time, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE installments
		SET due_date = $2, amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE installment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, installmentID, dueDate, amount, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update schedule of installment %s: %w", installmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkPaid records a payment against one installment. The update is conditional
// on the stored status AND amount_paid still being the values read by the
// caller; a partial-to-partial payment keeps the status unchanged, so the
// amount_paid guard is what catches that race. Zero rows affected means
// another caller changed the row first and reports ErrConflict.
func (r *PgxInstallmentRepository) MarkPaid(ctx context.Context, installmentID string, fromStatus, toStatus domain.InstallmentStatus, fromAmountPaid, amountPaid decimal.Decimal, paymentMethod string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE installments
		SET status = $4, amount_paid = $5, payment_method = $6, last_updated_at = $7, last_updated_by = $8
		WHERE installment_id = $1 AND status = $2 AND amount_paid = $3;
	`
	var method sql.NullString
	if paymentMethod != "" {
		method = sql.NullString{String: paymentMethod, Valid: true}
	}
	tag, err := r.Pool.Exec(ctx, query, installmentID, string(fromStatus), fromAmountPaid, string(toStatus), amountPaid, method, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark installment %s paid: %w", installmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: installment %s was modified concurrently", apperrors.ErrConflict, installmentID)
	}
	return nil
}

// UpdateAmount overwrites the denormalized amount field. Reconciler only.
func (r *PgxInstallmentRepository) UpdateAmount(ctx context.Context, installmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE installments
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE installment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, installmentID, amount, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update amount of installment %s: %w", installmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInstallmentsByTransactionID removes a transaction's whole plan and
// returns the number of rows deleted.
func (r *PgxInstallmentRepository) DeleteInstallmentsByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	query := `DELETE FROM installments WHERE loan_transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete installments for transaction %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}
