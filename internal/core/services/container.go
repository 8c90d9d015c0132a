package services

import (
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies. The audit service goes first since every mutating service
// records through it.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	auditSvc := NewAuditService(repos.AuditRepo)
	installmentSvc := NewInstallmentService(repos.InstallmentRepo, auditSvc)

	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(repos.CustomerRepo, repos.LoanRepo),
		Loan:        NewLoanService(repos.CustomerRepo, repos.LoanRepo, installmentSvc, auditSvc),
		Installment: installmentSvc,
		Reconcile:   NewReconcileService(repos.InstallmentRepo, auditSvc),
		Audit:       auditSvc,
	}
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.LedgerSvcFacade      = (*LedgerService)(nil)
	_ portssvc.LoanSvcFacade        = (*LoanService)(nil)
	_ portssvc.InstallmentSvcFacade = (*InstallmentService)(nil)
	_ portssvc.ReconcileSvcFacade   = (*ReconcileService)(nil)
	_ portssvc.AuditSvcFacade       = (*AuditService)(nil)
)
