package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/core/services"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, changes domain.BalanceChanges, enforceNonNegative bool) error {
	args := m.Called(ctx, txn, changes, enforceNonNegative)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveInitialBalance(ctx context.Context, txn domain.Transaction, target domain.LedgerRef) error {
	args := m.Called(ctx, txn, target)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock BoxReader ---
type MockBoxReader struct {
	mock.Mock
}

var _ portsrepo.BoxReader = (*MockBoxReader)(nil)

func (m *MockBoxReader) FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockBoxReader) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func (m *MockBoxReader) CountBoxes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PartyReader ---
type MockPartyReader struct {
	mock.Mock
}

var _ portsrepo.PartyReader = (*MockPartyReader)(nil)

func (m *MockPartyReader) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockBoxRepo   *MockBoxReader
	mockPartyRepo *MockPartyReader
	service       portssvc.TransactionSvcFacade
	cashBox       domain.Box
	checksBox     domain.Box
	client        domain.Party
	provider      domain.Party
	userID        string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBoxRepo = new(MockBoxReader)
	suite.mockPartyRepo = new(MockPartyReader)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockBoxRepo, suite.mockPartyRepo, false)

	suite.userID = uuid.NewString()

	suite.cashBox = domain.Box{
		BoxID:   uuid.NewString(),
		Name:    "Cash",
		BoxType: domain.BoxCash,
		Balance: decimal.NewFromInt(500),
	}
	suite.checksBox = domain.Box{
		BoxID:   uuid.NewString(),
		Name:    "Checks",
		BoxType: domain.BoxChecks,
		Balance: decimal.NewFromInt(200),
	}
	suite.client = domain.Party{
		PartyID:   uuid.NewString(),
		Name:      "Acme Retail",
		PartyType: domain.PartyClient,
		Balance:   decimal.NewFromInt(100),
		Status:    domain.PartyActive,
	}
	suite.provider = domain.Party{
		PartyID:   uuid.NewString(),
		Name:      "Wholesale Goods",
		PartyType: domain.PartyProvider,
		Balance:   decimal.NewFromInt(50),
		Status:    domain.PartyActive,
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaleIncreasesClientBalance() {
	ctx := context.Background()
	amount := decimal.RequireFromString("150.25")
	req := dto.CreateTransactionRequest{
		Type:    domain.Sale,
		Amount:  amount,
		PartyID: &suite.client.PartyID,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.client.PartyID).Return(&suite.client, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes domain.BalanceChanges) bool {
		return len(changes.Boxes) == 0 &&
			len(changes.Parties) == 1 &&
			changes.Parties[suite.client.PartyID].Equal(amount)
	}), false).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Sale, txn.TransactionType)
	suite.True(txn.Amount.Equal(amount))
	suite.Equal("Sale", txn.Description)
	suite.Equal(suite.userID, txn.CreatedBy)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CollectionMovesMoneyBothWays() {
	ctx := context.Background()
	amount := decimal.NewFromInt(80)
	req := dto.CreateTransactionRequest{
		Type:        domain.Collection,
		Amount:      amount,
		Description: "Invoice 42 paid in cash",
		BoxID:       &suite.cashBox.BoxID,
		PartyID:     &suite.client.PartyID,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.cashBox.BoxID).Return(&suite.cashBox, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.client.PartyID).Return(&suite.client, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes domain.BalanceChanges) bool {
		return changes.Boxes[suite.cashBox.BoxID].Equal(amount) &&
			changes.Parties[suite.client.PartyID].Equal(amount.Neg())
	}), false).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Invoice 42 paid in cash", txn.Description)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PaymentDecreasesProviderAndBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(30)
	req := dto.CreateTransactionRequest{
		Type:    domain.Payment,
		Amount:  amount,
		BoxID:   &suite.cashBox.BoxID,
		PartyID: &suite.provider.PartyID,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.cashBox.BoxID).Return(&suite.cashBox, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.provider.PartyID).Return(&suite.provider, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes domain.BalanceChanges) bool {
		return changes.Boxes[suite.cashBox.BoxID].Equal(amount.Neg()) &&
			changes.Parties[suite.provider.PartyID].Equal(amount.Neg())
	}), false).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferMovesBetweenBoxes() {
	ctx := context.Background()
	amount := decimal.NewFromInt(120)
	req := dto.CreateTransactionRequest{
		Type:        domain.Transfer,
		Amount:      amount,
		BoxID:       &suite.cashBox.BoxID,
		TargetBoxID: &suite.checksBox.BoxID,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.cashBox.BoxID).Return(&suite.cashBox, nil).Once()
	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.checksBox.BoxID).Return(&suite.checksBox, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes domain.BalanceChanges) bool {
		return changes.Boxes[suite.cashBox.BoxID].Equal(amount.Neg()) &&
			changes.Boxes[suite.checksBox.BoxID].Equal(amount) &&
			len(changes.Parties) == 0
	}), false).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockBoxRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferSameBoxFails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Transfer,
		Amount:      decimal.NewFromInt(10),
		BoxID:       &suite.cashBox.BoxID,
		TargetBoxID: &suite.cashBox.BoxID,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmountFails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:    domain.Income,
		Amount:  decimal.Zero,
		BoxID:   &suite.cashBox.BoxID,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TooManyDecimalPlacesFails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:   domain.Income,
		Amount: decimal.RequireFromString("10.005"),
		BoxID:  &suite.cashBox.BoxID,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InitialBalanceTypeRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:   domain.InitialBalance,
		Amount: decimal.NewFromInt(100),
		BoxID:  &suite.cashBox.BoxID,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingReferenceFails() {
	ctx := context.Background()
	// SALE needs a party; none given
	req := dto.CreateTransactionRequest{
		Type:   domain.Sale,
		Amount: decimal.NewFromInt(100),
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownBoxFails() {
	ctx := context.Background()
	missingBoxID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:   domain.Expense,
		Amount: decimal.NewFromInt(10),
		BoxID:  &missingBoxID,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, missingBoxID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactivePartyFails() {
	ctx := context.Background()
	inactive := suite.client
	inactive.Status = domain.PartyInactive
	req := dto.CreateTransactionRequest{
		Type:    domain.Sale,
		Amount:  decimal.NewFromInt(10),
		PartyID: &inactive.PartyID,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, inactive.PartyID).Return(&inactive, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EnforcementFlagPassedThrough() {
	ctx := context.Background()
	strictService := services.NewTransactionService(suite.mockTxnRepo, suite.mockBoxRepo, suite.mockPartyRepo, true)
	amount := decimal.NewFromInt(10)
	req := dto.CreateTransactionRequest{
		Type:   domain.Expense,
		Amount: amount,
		BoxID:  &suite.cashBox.BoxID,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.cashBox.BoxID).Return(&suite.cashBox, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.BalanceChanges"), true).Return(nil).Once()

	_, err := strictService.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSetInitialBalance_Box() {
	ctx := context.Background()
	amount := decimal.RequireFromString("1000.50")
	req := dto.SetInitialBalanceRequest{
		LedgerID: suite.cashBox.BoxID,
		Kind:     domain.LedgerBox,
		Amount:   amount,
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, suite.cashBox.BoxID).Return(&suite.cashBox, nil).Once()
	suite.mockTxnRepo.On("SaveInitialBalance", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionType == domain.InitialBalance &&
			txn.Amount.Equal(amount) &&
			txn.BoxID != nil && *txn.BoxID == suite.cashBox.BoxID
	}), domain.LedgerRef{Kind: domain.LedgerBox, ID: suite.cashBox.BoxID}).Return(nil).Once()

	err := suite.service.SetInitialBalance(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSetInitialBalance_KindMismatchFails() {
	ctx := context.Background()
	// The client ledger id points at a provider row
	req := dto.SetInitialBalanceRequest{
		LedgerID: suite.provider.PartyID,
		Kind:     domain.LedgerClient,
		Amount:   decimal.NewFromInt(10),
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.provider.PartyID).Return(&suite.provider, nil).Once()

	err := suite.service.SetInitialBalance(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveInitialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestSetInitialBalance_NegativeAmountFails() {
	ctx := context.Background()
	req := dto.SetInitialBalanceRequest{
		LedgerID: suite.cashBox.BoxID,
		Kind:     domain.LedgerBox,
		Amount:   decimal.NewFromInt(-5),
	}

	err := suite.service.SetInitialBalance(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveInitialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ClampsLimit() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), TransactionType: domain.Income, Amount: decimal.NewFromInt(5), TransactionDate: time.Now()},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, 100, (*string)(nil)).Return(txns, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 5000})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Nil(resp.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, 20, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
