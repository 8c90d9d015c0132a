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

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan and transaction data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func toDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:          m.LoanID,
		CustomerID:      m.CustomerID,
		TotalDebtAmount: m.TotalDebtAmount,
		CurrentBalance:  m.CurrentBalance,
		TermMonths:      m.TermMonths,
		NextDueDate:     m.NextDueDate,
		Status:          domain.LoanStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.LoanTransaction) domain.LoanTransaction {
	return domain.LoanTransaction{
		TransactionID:        m.TransactionID,
		LoanID:               m.LoanID,
		TransactionType:      domain.TransactionType(m.TransactionType),
		Amount:               m.Amount,
		TransactionTimestamp: m.TransactionTimestamp,
		PaymentMethod:        m.PaymentMethod,
		Remark:               m.Remark,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const loanColumns = `loan_id, customer_id, total_debt_amount, current_balance, term_months, next_due_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.CustomerID,
		&m.TotalDebtAmount,
		&m.CurrentBalance,
		&m.TermMonths,
		&m.NextDueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainLoan(m)
	return &d, nil
}

// SaveLoanWithTransaction persists a new loan together with its opening
// SERVICE transaction inside one database transaction.
func (r *PgxLoanRepository) SaveLoanWithTransaction(ctx context.Context, loan domain.Loan, txn domain.LoanTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	loanQuery := `
		INSERT INTO loans (loan_id, customer_id, total_debt_amount, current_balance, term_months, next_due_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, loanQuery,
		loan.LoanID,
		loan.CustomerID,
		loan.TotalDebtAmount,
		loan.CurrentBalance,
		loan.TermMonths,
		loan.NextDueDate,
		string(loan.Status),
		loan.CreatedAt,
		loan.CreatedBy,
		loan.LastUpdatedAt,
		loan.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: loan %s already exists", apperrors.ErrDuplicate, loan.LoanID)
		}
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ApplyPayment atomically decrements the loan balance and closes the loan when
// it reaches zero. The update is conditional on the loan being active with a
// sufficient balance; zero rows affected means a concurrent payment got there
// first (or would drive the balance negative) and reports ErrConflict.
func (r *PgxLoanRepository) ApplyPayment(ctx context.Context, loanID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET current_balance = current_balance - $2,
		    status = CASE WHEN current_balance - $2 <= 0 THEN 'CLOSED' ELSE status END,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE loan_id = $1 AND status = 'ACTIVE' AND current_balance >= $2
		RETURNING ` + loanColumns + `;
	`
	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID, amount, updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: loan %s not active or insufficient balance", apperrors.ErrConflict, loanID)
		}
		return nil, fmt.Errorf("failed to apply payment to loan %s: %w", loanID, err)
	}
	return loan, nil
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	return loan, nil
}

// FindLoansByCustomerID retrieves all loans for a customer, oldest first.
func (r *PgxLoanRepository) FindLoansByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY created_at, loan_id;`

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return loans, nil
}

// insertTransaction appends one transaction row using the given executor so it
// can run both standalone and inside a database transaction.
func insertTransaction(ctx context.Context, exec interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}, txn domain.LoanTransaction) error {
	query := `
		INSERT INTO loan_transactions (transaction_id, loan_id, transaction_type, amount, transaction_timestamp, payment_method, remark, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var paymentMethod, remark sql.NullString
	if txn.PaymentMethod != "" {
		paymentMethod = sql.NullString{String: txn.PaymentMethod, Valid: true}
	}
	if txn.Remark != "" {
		remark = sql.NullString{String: txn.Remark, Valid: true}
	}

	_, err := exec.Exec(ctx, query,
		txn.TransactionID,
		txn.LoanID,
		string(txn.TransactionType),
		txn.Amount,
		txn.TransactionTimestamp,
		paymentMethod,
		remark,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransaction appends one immutable financial event.
func (r *PgxLoanRepository) SaveTransaction(ctx context.Context, txn domain.LoanTransaction) error {
	return insertTransaction(ctx, r.Pool, txn)
}

const transactionColumns = `transaction_id, loan_id, transaction_type, amount, transaction_timestamp, payment_method, remark, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.LoanTransaction, error) {
	var m models.LoanTransaction
	var paymentMethod, remark sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.LoanID,
		&m.TransactionType,
		&m.Amount,
		&m.TransactionTimestamp,
		&paymentMethod,
		&remark,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.PaymentMethod = paymentMethod.String
	m.Remark = remark.String
	d := toDomainTransaction(m)
	return &d, nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxLoanRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.LoanTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM loan_transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// FindTransactionsByLoanIDs retrieves all PAYMENT and FEE transactions posted
// against the given loans, oldest first. SERVICE transactions are excluded:
// the ledger represents loan principal through the loan rows themselves.
func (r *PgxLoanRepository) FindTransactionsByLoanIDs(ctx context.Context, loanIDs []string) ([]domain.LoanTransaction, error) {
	if len(loanIDs) == 0 {
		return []domain.LoanTransaction{}, nil
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM loan_transactions
		WHERE loan_id = ANY($1) AND transaction_type IN ('PAYMENT', 'FEE')
		ORDER BY transaction_timestamp, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, loanIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by loan IDs: %w", err)
	}
	defer rows.Close()

	var txns []domain.LoanTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
