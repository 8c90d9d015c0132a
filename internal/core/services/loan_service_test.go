package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	"github.com/sitara-travels/lms-backend/internal/core/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo   *MockCustomerRepository
	mockLoanRepo       *MockLoanRepository
	mockInstallmentSvc *MockInstallmentService
	mockAuditSvc       *MockAuditService
	service            *services.LoanService
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockInstallmentSvc = new(MockInstallmentService)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewLoanService(suite.mockCustomerRepo, suite.mockLoanRepo, suite.mockInstallmentSvc, suite.mockAuditSvc)
	suite.mockAuditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *LoanServiceTestSuite) grantRequest() dto.GrantLoanRequest {
	return dto.GrantLoanRequest{
		CustomerName: "Asad Mehmood",
		CNIC:         "35202-1234567-1",
		Phone:        "+92-300-1234567",
		Amount:       decimal.NewFromInt(1200),
		TermMonths:   6,
		FirstDueDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LoanServiceTestSuite) TestGrantLoan_NewCustomer() {
	ctx := context.Background()
	req := suite.grantRequest()

	suite.mockCustomerRepo.On("FindCustomerByCNIC", ctx, req.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CNIC == req.CNIC && c.Name == req.CustomerName
	})).Return(nil).Once()
	suite.mockLoanRepo.On("SaveLoanWithTransaction", ctx,
		mock.MatchedBy(func(l domain.Loan) bool {
			return l.Status == domain.LoanActive &&
				l.TotalDebtAmount.Equal(req.Amount) &&
				l.CurrentBalance.Equal(req.Amount) &&
				l.TermMonths == req.TermMonths &&
				l.NextDueDate.Equal(req.FirstDueDate)
		}),
		mock.MatchedBy(func(t domain.LoanTransaction) bool {
			return t.TransactionType == domain.Service && t.Amount.Equal(req.Amount)
		}),
	).Return(nil).Once()
	suite.mockInstallmentSvc.On("GenerateSchedule", ctx, mock.AnythingOfType("string"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(req.Amount) }),
		req.TermMonths, req.FirstDueDate, "emp-1").Return([]domain.Installment{}, nil).Once()

	loan, err := suite.service.GrantLoan(ctx, req, "emp-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.NotEmpty(loan.LoanID)
	suite.Equal(domain.LoanActive, loan.Status)
	suite.True(loan.CurrentBalance.Equal(req.Amount))
	// The loan carries the schedule's start date; it stays fixed after grant.
	suite.True(loan.NextDueDate.Equal(req.FirstDueDate))
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockLoanRepo.AssertExpectations(suite.T())
	suite.mockInstallmentSvc.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestGrantLoan_ExistingCustomerByCNIC() {
	ctx := context.Background()
	req := suite.grantRequest()
	existing := &domain.Customer{CustomerID: uuid.NewString(), Name: req.CustomerName, CNIC: req.CNIC}

	suite.mockCustomerRepo.On("FindCustomerByCNIC", ctx, req.CNIC).Return(existing, nil).Once()
	suite.mockLoanRepo.On("SaveLoanWithTransaction", ctx,
		mock.MatchedBy(func(l domain.Loan) bool { return l.CustomerID == existing.CustomerID }),
		mock.AnythingOfType("domain.LoanTransaction"),
	).Return(nil).Once()
	suite.mockInstallmentSvc.On("GenerateSchedule", ctx, mock.AnythingOfType("string"),
		mock.AnythingOfType("decimal.Decimal"), req.TermMonths, req.FirstDueDate, "emp-1").
		Return([]domain.Installment{}, nil).Once()

	loan, err := suite.service.GrantLoan(ctx, req, "emp-1")

	suite.Require().NoError(err)
	suite.Equal(existing.CustomerID, loan.CustomerID)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer")
}

func (suite *LoanServiceTestSuite) TestGrantLoan_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := suite.grantRequest()
	req.Amount = decimal.NewFromInt(-5)

	loan, err := suite.service.GrantLoan(ctx, req, "emp-1")

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByCNIC")
}

func (suite *LoanServiceTestSuite) TestGrantLoan_ScheduleFailureSurfaced() {
	ctx := context.Background()
	req := suite.grantRequest()
	existing := &domain.Customer{CustomerID: uuid.NewString(), CNIC: req.CNIC}

	suite.mockCustomerRepo.On("FindCustomerByCNIC", ctx, req.CNIC).Return(existing, nil).Once()
	suite.mockLoanRepo.On("SaveLoanWithTransaction", ctx, mock.AnythingOfType("domain.Loan"), mock.AnythingOfType("domain.LoanTransaction")).Return(nil).Once()
	suite.mockInstallmentSvc.On("GenerateSchedule", ctx, mock.AnythingOfType("string"),
		mock.AnythingOfType("decimal.Decimal"), req.TermMonths, req.FirstDueDate, "emp-1").
		Return(nil, assert.AnError).Once()

	loan, err := suite.service.GrantLoan(ctx, req, "emp-1")

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *LoanServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	loanID := uuid.NewString()
	stored := &domain.Loan{
		LoanID:         loanID,
		Status:         domain.LoanActive,
		CurrentBalance: decimal.NewFromInt(500),
	}
	after := &domain.Loan{
		LoanID:         loanID,
		Status:         domain.LoanActive,
		CurrentBalance: decimal.NewFromInt(300),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(stored, nil).Once()
	suite.mockLoanRepo.On("ApplyPayment", ctx, loanID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(200)) }),
		"emp-1", mock.AnythingOfType("time.Time")).Return(after, nil).Once()
	suite.mockLoanRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.LoanTransaction) bool {
		return t.TransactionType == domain.Payment && t.Amount.Equal(decimal.NewFromInt(200)) && t.LoanID == loanID
	})).Return(nil).Once()

	txn, err := suite.service.RecordPayment(ctx, loanID, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(200),
		PaymentMethod: "cash",
	}, "emp-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Payment, txn.TransactionType)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestRecordPayment_ExceedsBalance() {
	ctx := context.Background()
	loanID := uuid.NewString()
	stored := &domain.Loan{
		LoanID:         loanID,
		Status:         domain.LoanActive,
		CurrentBalance: decimal.NewFromInt(100),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(stored, nil).Once()

	txn, err := suite.service.RecordPayment(ctx, loanID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(150),
	}, "emp-1")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ApplyPayment")
}

func (suite *LoanServiceTestSuite) TestRecordPayment_ClosedLoan() {
	ctx := context.Background()
	loanID := uuid.NewString()
	stored := &domain.Loan{
		LoanID:         loanID,
		Status:         domain.LoanClosed,
		CurrentBalance: decimal.Zero,
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(stored, nil).Once()

	_, err := suite.service.RecordPayment(ctx, loanID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(50),
	}, "emp-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LoanServiceTestSuite) TestRecordPayment_ConcurrentConflict() {
	ctx := context.Background()
	loanID := uuid.NewString()
	stored := &domain.Loan{
		LoanID:         loanID,
		Status:         domain.LoanActive,
		CurrentBalance: decimal.NewFromInt(100),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(stored, nil).Once()
	// The conditional update reports a conflict: another payment got in first.
	suite.mockLoanRepo.On("ApplyPayment", ctx, loanID,
		mock.AnythingOfType("decimal.Decimal"), "emp-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.RecordPayment(ctx, loanID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(100),
	}, "emp-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LoanServiceTestSuite) TestGetLoanByID_NotFound() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(nil, apperrors.ErrNotFound).Once()

	loan, err := suite.service.GetLoanByID(ctx, loanID)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestListLoansByCustomer_NilBecomesEmpty() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return([]domain.Loan(nil), nil).Once()

	loans, err := suite.service.ListLoansByCustomer(ctx, customerID)

	suite.Require().NoError(err)
	suite.NotNil(loans)
	suite.Empty(loans)
}

func TestLoanService(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
