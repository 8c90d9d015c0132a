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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockLoanRepo     *MockLoanRepository
	service          *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.service = services.NewLedgerService(suite.mockCustomerRepo, suite.mockLoanRepo)
}

func (suite *LedgerServiceTestSuite) customer(id string) *domain.Customer {
	return &domain.Customer{
		CustomerID: id,
		Name:       "Asad Mehmood",
		CNIC:       "35202-1234567-1",
	}
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_MergesAndOrders() {
	ctx := context.Background()
	customerID := uuid.NewString()
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	loans := []domain.Loan{
		{
			LoanID:          "loan-1",
			CustomerID:      customerID,
			TotalDebtAmount: decimal.NewFromInt(1000),
			TermMonths:      4,
			AuditFields:     domain.AuditFields{CreatedAt: base},
		},
	}
	txns := []domain.LoanTransaction{
		{
			TransactionID:        "txn-pay-1",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(250),
			TransactionTimestamp: base.Add(24 * time.Hour),
		},
		{
			TransactionID:        "txn-fee-1",
			LoanID:               "loan-1",
			TransactionType:      domain.Fee,
			Amount:               decimal.NewFromInt(50),
			TransactionTimestamp: base.Add(48 * time.Hour),
		},
		{
			TransactionID:        "txn-pay-2",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(300),
			TransactionTimestamp: base.Add(72 * time.Hour),
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return(loans, nil).Once()
	suite.mockLoanRepo.On("FindTransactionsByLoanIDs", ctx, []string{"loan-1"}).Return(txns, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 4)

	// Chronological order: loan, payment, fee, payment.
	suite.Equal("loan-1", ledger.Entries[0].EntryID)
	suite.Equal(domain.LedgerService, ledger.Entries[0].Type)
	suite.True(ledger.Entries[0].IsDebit)
	suite.Equal("txn-pay-1", ledger.Entries[1].EntryID)
	suite.False(ledger.Entries[1].IsDebit)
	suite.Equal("txn-fee-1", ledger.Entries[2].EntryID)
	suite.True(ledger.Entries[2].IsDebit)
	suite.Equal("txn-pay-2", ledger.Entries[3].EntryID)

	// Running balance: 1000, 750, 800, 500.
	suite.True(ledger.Entries[0].Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(ledger.Entries[1].Balance.Equal(decimal.NewFromInt(750)))
	suite.True(ledger.Entries[2].Balance.Equal(decimal.NewFromInt(800)))
	suite.True(ledger.Entries[3].Balance.Equal(decimal.NewFromInt(500)))

	// Final balance = sum(debits) - sum(credits) and matches the last entry.
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(500)))
	suite.True(ledger.Balance.Equal(ledger.Entries[3].Balance))

	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_TieBreakLoanBeforePayment() {
	ctx := context.Background()
	customerID := uuid.NewString()
	sameInstant := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	loans := []domain.Loan{
		{
			LoanID:          "loan-1",
			CustomerID:      customerID,
			TotalDebtAmount: decimal.NewFromInt(600),
			TermMonths:      3,
			AuditFields:     domain.AuditFields{CreatedAt: sameInstant},
		},
	}
	txns := []domain.LoanTransaction{
		{
			TransactionID:        "txn-pay-1",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(600),
			TransactionTimestamp: sameInstant,
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return(loans, nil).Once()
	suite.mockLoanRepo.On("FindTransactionsByLoanIDs", ctx, []string{"loan-1"}).Return(txns, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 2)
	// Equal timestamps: the debt-increasing loan entry sorts first, so the
	// running balance never dips negative.
	suite.Equal("loan-1", ledger.Entries[0].EntryID)
	suite.Equal("txn-pay-1", ledger.Entries[1].EntryID)
	suite.True(ledger.Balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_NoLoans() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return([]domain.Loan{}, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.NotNil(ledger.Entries)
	suite.Empty(ledger.Entries)
	suite.True(ledger.Balance.IsZero())
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "FindTransactionsByLoanIDs")
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_CustomerNotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "FindLoansByCustomerID")
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_SourceUnavailable() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return(nil, assert.AnError).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().Error(err)
	suite.Nil(ledger)
	// Partial data must never be presented as a complete ledger.
	suite.ErrorIs(err, apperrors.ErrDataUnavailable)
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_EntryDescriptions() {
	ctx := context.Background()
	customerID := uuid.NewString()
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	loans := []domain.Loan{
		{
			LoanID:          "loan-1",
			TotalDebtAmount: decimal.NewFromInt(1000),
			TermMonths:      4,
			AuditFields:     domain.AuditFields{CreatedAt: base},
		},
	}
	txns := []domain.LoanTransaction{
		{
			TransactionID:        "txn-pay-1",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(100),
			TransactionTimestamp: base.Add(24 * time.Hour),
			PaymentMethod:        "bank transfer",
		},
		{
			TransactionID:        "txn-pay-2",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(100),
			TransactionTimestamp: base.Add(48 * time.Hour),
			PaymentMethod:        "cash",
			Remark:               "Umrah package settlement",
		},
		{
			TransactionID:        "txn-pay-3",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(100),
			TransactionTimestamp: base.Add(72 * time.Hour),
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return(loans, nil).Once()
	suite.mockLoanRepo.On("FindTransactionsByLoanIDs", ctx, []string{"loan-1"}).Return(txns, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 4)
	suite.Equal("Payment received via bank transfer", ledger.Entries[1].Description)
	// A remark replaces the generic wording but the method still shows.
	suite.Equal("Umrah package settlement via cash", ledger.Entries[2].Description)
	suite.Equal("Payment received", ledger.Entries[3].Description)
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_MultipleLoans() {
	ctx := context.Background()
	customerID := uuid.NewString()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	loans := []domain.Loan{
		{
			LoanID:          "loan-1",
			TotalDebtAmount: decimal.NewFromInt(1000),
			TermMonths:      2,
			AuditFields:     domain.AuditFields{CreatedAt: base},
		},
		{
			LoanID:          "loan-2",
			TotalDebtAmount: decimal.NewFromInt(400),
			TermMonths:      1,
			AuditFields:     domain.AuditFields{CreatedAt: base.Add(48 * time.Hour)},
		},
	}
	txns := []domain.LoanTransaction{
		{
			TransactionID:        "txn-pay-1",
			LoanID:               "loan-1",
			TransactionType:      domain.Payment,
			Amount:               decimal.NewFromInt(500),
			TransactionTimestamp: base.Add(24 * time.Hour),
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(suite.customer(customerID), nil).Once()
	suite.mockLoanRepo.On("FindLoansByCustomerID", ctx, customerID).Return(loans, nil).Once()
	suite.mockLoanRepo.On("FindTransactionsByLoanIDs", ctx, []string{"loan-1", "loan-2"}).Return(txns, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 3)
	suite.Equal("loan-1", ledger.Entries[0].EntryID)
	suite.Equal("txn-pay-1", ledger.Entries[1].EntryID)
	suite.Equal("loan-2", ledger.Entries[2].EntryID)
	// 1000 - 500 + 400
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(900)))
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
