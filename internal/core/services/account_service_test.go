package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/SscSPs/money_records_app/internal/core/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockRecordRepository mocks the account, category, asset and budget repositories at once.
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockRecordRepository) ListAccountsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockRecordRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockRecordRepository) ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockRecordRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockRecordRepository) ListAssetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockRecordRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	return m.Called(ctx, budget).Error(0)
}

func (m *MockRecordRepository) ListBudgetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

type RecordServicesTestSuite struct {
	suite.Suite
	mockRepo *MockRecordRepository
	ctx      context.Context
	userID   uuid.UUID
}

func (suite *RecordServicesTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository)
	suite.ctx = context.Background()
	suite.userID = uuid.New()
}

func (suite *RecordServicesTestSuite) TestCreateAccount() {
	svc := services.NewAccountService(suite.mockRepo)
	req := dto.CreateAccountRequest{Name: "Wallet", AccountType: "cash", Balance: decimal.RequireFromString("12.30"), Currency: "CNY"}
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Wallet" && a.UserID == suite.userID && a.AccountID != uuid.Nil
	})).Return(nil).Once()

	account, err := svc.CreateAccount(suite.ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("cash", account.AccountType)
	suite.True(req.Balance.Equal(account.Balance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServicesTestSuite) TestCreateAccount_RepoError() {
	svc := services.NewAccountService(suite.mockRepo)
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := svc.CreateAccount(suite.ctx, suite.userID, dto.CreateAccountRequest{Name: "Wallet", AccountType: "cash", Currency: "CNY"})

	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *RecordServicesTestSuite) TestListAccounts() {
	svc := services.NewAccountService(suite.mockRepo)
	stored := []domain.Account{{AccountID: uuid.New(), Name: "Bank"}}
	suite.mockRepo.On("ListAccountsByUser", suite.ctx, suite.userID).Return(stored, nil).Once()

	accounts, err := svc.ListAccounts(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(stored, accounts)
}

func (suite *RecordServicesTestSuite) TestCreateCategory_WithParent() {
	svc := services.NewCategoryService(suite.mockRepo)
	parent := uuid.New()
	parentStr := parent.String()
	suite.mockRepo.On("SaveCategory", suite.ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := svc.CreateCategory(suite.ctx, suite.userID, dto.CreateCategoryRequest{Name: "Food", ParentID: &parentStr, CategoryType: "expense"})

	suite.Require().NoError(err)
	suite.Require().NotNil(category.ParentID)
	suite.Equal(parent, *category.ParentID)
}

func (suite *RecordServicesTestSuite) TestCreateCategory_BadParent() {
	svc := services.NewCategoryService(suite.mockRepo)
	bad := "not-a-uuid"

	category, err := svc.CreateCategory(suite.ctx, suite.userID, dto.CreateCategoryRequest{Name: "Food", ParentID: &bad, CategoryType: "expense"})

	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *RecordServicesTestSuite) TestCreateAsset_BadAccountID() {
	svc := services.NewAssetService(suite.mockRepo)

	asset, err := svc.CreateAsset(suite.ctx, suite.userID, dto.CreateAssetRequest{Name: "Fund", AssetType: "fund", Currency: "USD", AccountID: "nope"})

	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RecordServicesTestSuite) TestCreateAsset() {
	svc := services.NewAssetService(suite.mockRepo)
	accountID := uuid.New()
	suite.mockRepo.On("SaveAsset", suite.ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := svc.CreateAsset(suite.ctx, suite.userID, dto.CreateAssetRequest{Name: "Fund", AssetType: "fund", Currency: "USD", AccountID: accountID.String()})

	suite.Require().NoError(err)
	suite.Equal(accountID, asset.AccountID)
	suite.Equal(suite.userID, asset.UserID)
}

func (suite *RecordServicesTestSuite) TestCreateBudget_Validation() {
	svc := services.NewBudgetService(suite.mockRepo)
	category := uuid.New().String()

	testCases := []struct {
		name string
		req  dto.CreateBudgetRequest
	}{
		{"bad category", dto.CreateBudgetRequest{CategoryID: "x", Period: "monthly", StartDate: "2024-01-01T00:00:00Z", EndDate: "2024-02-01T00:00:00Z"}},
		{"bad start", dto.CreateBudgetRequest{CategoryID: category, Period: "monthly", StartDate: "2024-01-01", EndDate: "2024-02-01T00:00:00Z"}},
		{"bad end", dto.CreateBudgetRequest{CategoryID: category, Period: "monthly", StartDate: "2024-01-01T00:00:00Z", EndDate: "soon"}},
		{"end before start", dto.CreateBudgetRequest{CategoryID: category, Period: "monthly", StartDate: "2024-02-01T00:00:00Z", EndDate: "2024-01-01T00:00:00Z"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			budget, err := svc.CreateBudget(suite.ctx, suite.userID, tc.req)
			suite.Nil(budget)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *RecordServicesTestSuite) TestCreateBudget_SameDayRange() {
	svc := services.NewBudgetService(suite.mockRepo)
	suite.mockRepo.On("SaveBudget", suite.ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := svc.CreateBudget(suite.ctx, suite.userID, dto.CreateBudgetRequest{
		CategoryID: uuid.New().String(),
		Amount:     decimal.NewFromInt(500),
		Period:     "daily",
		StartDate:  "2024-01-01T00:00:00Z",
		EndDate:    "2024-01-01T00:00:00Z",
	})

	suite.Require().NoError(err)
	suite.True(budget.StartDate.Equal(budget.EndDate))
}

func TestRecordServicesTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServicesTestSuite))
}

func TestListBudgets_RepoError(t *testing.T) {
	repo := new(MockRecordRepository)
	userID := uuid.New()
	repo.On("ListBudgetsByUser", mock.Anything, userID).Return(nil, assert.AnError)

	budgets, err := services.NewBudgetService(repo).ListBudgets(context.Background(), userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, budgets)
}
