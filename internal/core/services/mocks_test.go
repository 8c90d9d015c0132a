package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// Shared repository and service mocks for the service tests. Several services
// depend on the same facades, so the mocks live in one place instead of being
// redeclared per test file.

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByCNIC(ctx context.Context, cnic string) (*domain.Customer, error) {
	args := m.Called(ctx, cnic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- Mock LoanRepository ---

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoansByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoanWithTransaction(ctx context.Context, loan domain.Loan, txn domain.LoanTransaction) error {
	args := m.Called(ctx, loan, txn)
	return args.Error(0)
}

func (m *MockLoanRepository) ApplyPayment(ctx context.Context, loanID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, amount, updatedBy, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.LoanTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanTransaction), args.Error(1)
}

func (m *MockLoanRepository) FindTransactionsByLoanIDs(ctx context.Context, loanIDs []string) ([]domain.LoanTransaction, error) {
	args := m.Called(ctx, loanIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanTransaction), args.Error(1)
}

func (m *MockLoanRepository) SaveTransaction(ctx context.Context, txn domain.LoanTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

// --- Mock InstallmentRepository ---

type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) FindInstallmentsByTransactionID(ctx context.Context, transactionID string) ([]domain.Installment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListAllInstallments(ctx context.Context) ([]domain.Installment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) SaveInstallments(ctx context.Context, installments []domain.Installment) error {
	args := m.Called(ctx, installments)
	return args.Error(0)
}

func (m *MockInstallmentRepository) UpdateSchedule(ctx context.Context, installmentID string, dueDate time.Time, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, installmentID, dueDate, amount, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInstallmentRepository) MarkPaid(ctx context.Context, installmentID string, fromStatus, toStatus domain.InstallmentStatus, fromAmountPaid, amountPaid decimal.Decimal, paymentMethod string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, installmentID, fromStatus, toStatus, fromAmountPaid, amountPaid, paymentMethod, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInstallmentRepository) UpdateAmount(ctx context.Context, installmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, installmentID, amount, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInstallmentRepository) DeleteInstallmentsByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.InstallmentRepositoryFacade = (*MockInstallmentRepository)(nil)

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditLogsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actorID, action, entityType, entityID string, changes map[string]any) error {
	args := m.Called(ctx, actorID, action, entityType, entityID, changes)
	return args.Error(0)
}

func (m *MockAuditService) Query(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

// --- Mock InstallmentService (for LoanService tests) ---

type MockInstallmentService struct {
	mock.Mock
}

func (m *MockInstallmentService) GenerateSchedule(ctx context.Context, transactionID string, totalAmount decimal.Decimal, termMonths int, firstDueDate time.Time, actorID string) ([]domain.Installment, error) {
	args := m.Called(ctx, transactionID, totalAmount, termMonths, firstDueDate, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentService) ListInstallments(ctx context.Context, transactionID string) ([]domain.Installment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentService) EditInstallments(ctx context.Context, transactionID string, edits []dto.InstallmentEditRequest, actorID string) (*domain.BulkEditResult, error) {
	args := m.Called(ctx, transactionID, edits, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkEditResult), args.Error(1)
}

func (m *MockInstallmentService) MarkPaid(ctx context.Context, installmentID string, amountPaid decimal.Decimal, paymentMethod string, actorID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID, amountPaid, paymentMethod, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentService) WipeSchedule(ctx context.Context, transactionID string, actorID string) (int64, error) {
	args := m.Called(ctx, transactionID, actorID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.InstallmentSvcFacade = (*MockInstallmentService)(nil)
