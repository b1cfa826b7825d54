package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/SscSPs/money_records_app/internal/handlers"
	"github.com/SscSPs/money_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *MockOrderService
	mockQueryService *MockOrderQueryService
	tokens           portssvc.TokenSvcFacade
	userID           uuid.UUID
}

func (suite *OrderHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	suite.tokens = newTestTokenService()
	suite.mockOrderService = new(MockOrderService)
	suite.mockQueryService = new(MockOrderQueryService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.tokens))
	handlers.RegisterOrderRoutes(v1, suite.mockOrderService, suite.mockQueryService)
}

func (suite *OrderHandlerTestSuite) do(method, url string, body any, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", bearer(suite.tokens, suite.userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) assertNoServiceCalls() {
	suite.mockQueryService.AssertNotCalled(suite.T(), "QueryOrders", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrderService.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrderService.AssertNotCalled(suite.T(), "ListOrders", mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestQuery_WithoutAuthorizationHeader() {
	w := suite.do(http.MethodGet, "/api/v1/orders/query", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.NotEmpty(body.Message)
	suite.assertNoServiceCalls()
}

func (suite *OrderHandlerTestSuite) TestQuery_Success() {
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	remark := "weekly shop"
	page := []domain.Order{
		{OrderID: uuid.New(), Name: "groceries", OrderType: domain.OrderExpense, Amount: decimal.RequireFromString("30.5"), Currency: "CNY", Date: day, Remark: &remark},
	}
	result := &domain.OrderQueryResult{
		Total:  3,
		Orders: page,
		Stats: map[domain.OrderType]decimal.Decimal{
			domain.OrderExpense: decimal.RequireFromString("130.5"),
			domain.OrderIncome:  decimal.NewFromInt(200),
		},
	}
	suite.mockQueryService.On("QueryOrders", mock.Anything, suite.userID, mock.MatchedBy(func(q domain.OrderQuery) bool {
		return q.Page == 2 && q.PageSize == 1 &&
			q.Name != nil && *q.Name == "gro" &&
			q.OrderType == nil && q.DateStart == nil && q.DateEnd == nil
	})).Return(result, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/query?page=2&page_size=1&name=gro", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var raw map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	suite.ElementsMatch([]string{"total", "orders", "stat"}, keys(raw))

	var resp dto.QueryOrdersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.Total)
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(page[0].OrderID.String(), resp.Orders[0].ID)
	suite.Equal("2024-05-01T10:00:00Z", resp.Orders[0].Date)
	suite.Equal(30.5, resp.Orders[0].Amount)
	suite.Equal(map[string]float64{"expense": 130.5, "income": 200}, resp.Stat)
	suite.mockQueryService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestQuery_PassesAllFilters() {
	suite.mockQueryService.On("QueryOrders", mock.Anything, suite.userID, mock.MatchedBy(func(q domain.OrderQuery) bool {
		return q.Page == 0 && q.PageSize == 0 &&
			q.OrderType != nil && *q.OrderType == "income" &&
			q.DateStart != nil && *q.DateStart == "2024-01-01T00:00:00Z" &&
			q.DateEnd != nil && *q.DateEnd == "2024-12-31T23:59:59Z"
	})).Return(&domain.OrderQueryResult{Orders: []domain.Order{}, Stats: map[domain.OrderType]decimal.Decimal{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/query?order_type=income&date_start=2024-01-01T00:00:00Z&date_end=2024-12-31T23:59:59Z", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"total":0,"orders":[],"stat":{}}`, w.Body.String())
}

func (suite *OrderHandlerTestSuite) TestQuery_NonIntegerPage() {
	for _, url := range []string{"/api/v1/orders/query?page=two", "/api/v1/orders/query?page_size=1.5"} {
		w := suite.do(http.MethodGet, url, nil, true)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.assertNoServiceCalls()
}

func (suite *OrderHandlerTestSuite) TestQuery_StoreUnavailable() {
	storeErr := fmt.Errorf("%w: connection refused", apperrors.ErrStoreUnavailable)
	suite.mockQueryService.On("QueryOrders", mock.Anything, suite.userID, mock.Anything).Return(nil, storeErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders/query", nil, true)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), `"message"`)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_Success() {
	order := &domain.Order{
		OrderID:   uuid.New(),
		Name:      "salary",
		OrderType: domain.OrderIncome,
		Amount:    decimal.NewFromInt(1000),
		Currency:  "USD",
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockOrderService.On("CreateOrder", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateOrderRequest) bool {
		return r.Name == "salary" && r.OrderType == "income" && r.Amount != nil && r.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(order, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"name": "salary", "order_type": "income", "amount": 1000, "currency": "USD", "date": "2024-06-01T00:00:00Z",
	}, true)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(order.OrderID.String(), resp.ID)
	suite.Equal("income", resp.OrderType)
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_RejectsInvalidBody() {
	testCases := []map[string]any{
		{"name": "x", "order_type": "gift", "amount": 1, "currency": "USD"},
		{"name": "x", "order_type": "expense", "amount": 1, "currency": "GBP"},
		{"order_type": "expense", "amount": 1, "currency": "USD"},
		{"name": "x", "order_type": "expense", "currency": "USD"},
	}
	for _, body := range testCases {
		w := suite.do(http.MethodPost, "/api/v1/orders", body, true)
		suite.Equal(http.StatusBadRequest, w.Code, fmt.Sprint(body))
	}
	suite.assertNoServiceCalls()
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_BadDate() {
	suite.mockOrderService.On("CreateOrder", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: date must be an RFC3339 timestamp", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"name": "x", "order_type": "expense", "amount": 1, "currency": "EUR", "date": "yesterday",
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *OrderHandlerTestSuite) TestListOrders() {
	orders := []domain.Order{{OrderID: uuid.New(), Name: "a"}, {OrderID: uuid.New(), Name: "b"}}
	suite.mockOrderService.On("ListOrders", mock.Anything, suite.userID).Return(orders, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *OrderHandlerTestSuite) TestDeleteOrder() {
	found := uuid.New()
	missing := uuid.New()
	suite.mockOrderService.On("DeleteOrder", mock.Anything, suite.userID, found).Return(nil).Once()
	suite.mockOrderService.On("DeleteOrder", mock.Anything, suite.userID, missing).Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/orders/"+found.String(), nil, true).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/orders/"+missing.String(), nil, true).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodDelete, "/api/v1/orders/not-a-uuid", nil, true).Code)
	suite.mockOrderService.AssertExpectations(suite.T())
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
