package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories on one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(pool),
		LoanRepo:        newPgxLoanRepository(pool),
		InstallmentRepo: newPgxInstallmentRepository(pool),
		AuditRepo:       newPgxAuditRepository(pool),
	}
}
