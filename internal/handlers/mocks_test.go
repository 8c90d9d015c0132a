package handlers

// Service mocks shared by the handler test suites. They live in one file
// because all _test.go files here compile into the same package; per-file
// declarations would collide.

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"
	"github.com/stretchr/testify/mock"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "lms-test"
)

// newAuthedTestRouter builds a gin engine with the real auth middleware, the
// same way the API group is assembled in RegisterRoutes.
func newAuthedTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testJWTSecret, testJWTIssuer))
	return r
}

// generateTestToken mints a token the way the portal's auth service does:
// HS256 with the employee ID in the subject claim.
func generateTestToken(t *testing.T, userID string) string {
	return generateTestTokenWithIssuer(t, userID, testJWTIssuer)
}

func generateTestTokenWithIssuer(t *testing.T, userID, issuer string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerLedger), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) GrantLoan(ctx context.Context, req dto.GrantLoanRequest, actorID string) (*domain.Loan, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) RecordPayment(ctx context.Context, loanID string, req dto.RecordPaymentRequest, actorID string) (*domain.LoanTransaction, error) {
	args := m.Called(ctx, loanID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanTransaction), args.Error(1)
}

func (m *MockLoanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) ListLoansByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Mock InstallmentService ---
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

// --- Mock ReconcileService ---
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) ReconcileAmounts(ctx context.Context, actorID string) (*domain.ReconcileSummary, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileSummary), args.Error(1)
}

var _ portssvc.ReconcileSvcFacade = (*MockReconcileService)(nil)

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
