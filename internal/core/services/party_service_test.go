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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

// Only the facade's non-transactional surface is exercised by the service;
// the tx-scoped methods exist to satisfy the interface.
var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) DeactivateParty(ctx context.Context, partyID string, partyType domain.PartyType, userID string, now time.Time) error {
	args := m.Called(ctx, partyID, partyType, userID, now)
	return args.Error(0)
}

func (m *MockPartyRepository) FindPartiesByIDsForUpdate(ctx context.Context, tx pgx.Tx, partyIDs []string) (map[string]domain.Party, error) {
	args := m.Called(ctx, tx, partyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) UpdatePartyBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, userID, now)
	return args.Error(0)
}

func (m *MockPartyRepository) SetPartyBalanceInTx(ctx context.Context, tx pgx.Tx, partyID string, amount decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, partyID, amount, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type PartyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPartyRepository
	service  portssvc.PartySvcFacade
	userID   string
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPartyRepository)
	suite.service = services.NewPartyService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{Name: "  Acme Retail  "}

	suite.mockRepo.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == "Acme Retail" &&
			p.PartyType == domain.PartyClient &&
			p.Balance.IsZero() &&
			p.Status == domain.PartyActive &&
			p.CreatedBy == suite.userID
	})).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, domain.PartyClient, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(party)
	suite.NotEmpty(party.PartyID)
	suite.Equal("Acme Retail", party.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCreateParty_EmptyNameFails() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{Name: "   "}

	_, err := suite.service.CreateParty(ctx, domain.PartyProvider, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveParty", mock.Anything, mock.Anything)
}

func (suite *PartyServiceTestSuite) TestGetPartyByID_WrongKindIsNotFound() {
	ctx := context.Background()
	provider := &domain.Party{
		PartyID:   uuid.NewString(),
		Name:      "Wholesale Goods",
		PartyType: domain.PartyProvider,
		Status:    domain.PartyActive,
	}

	suite.mockRepo.On("FindPartyByID", ctx, provider.PartyID).Return(provider, nil).Once()

	// Looked up through the client route
	_, err := suite.service.GetPartyByID(ctx, domain.PartyClient, provider.PartyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PartyServiceTestSuite) TestListParties_ActiveOnly() {
	ctx := context.Background()
	parties := []domain.Party{
		{PartyID: uuid.NewString(), Name: "A", PartyType: domain.PartyClient, Status: domain.PartyActive},
	}

	suite.mockRepo.On("ListParties", ctx, domain.PartyClient, true).Return(parties, nil).Once()

	result, err := suite.service.ListParties(ctx, domain.PartyClient, true)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestDeactivateParty_Success() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockRepo.On("DeactivateParty", ctx, partyID, domain.PartyProvider, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateParty(ctx, domain.PartyProvider, partyID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestDeactivateParty_NotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockRepo.On("DeactivateParty", ctx, partyID, domain.PartyClient, suite.userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateParty(ctx, domain.PartyClient, partyID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPartyService(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
