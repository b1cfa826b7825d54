package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToQueryOrdersResponse_JSONShape(t *testing.T) {
	orderID := uuid.MustParse("6f1c1c2e-7c1a-4d55-9a43-3f1b7a0e9d21")
	shanghai := time.FixedZone("CST", 8*60*60)
	result := &domain.OrderQueryResult{
		Total: 5,
		Orders: []domain.Order{{
			OrderID:   orderID,
			Name:      "coffee",
			OrderType: domain.OrderExpense,
			Amount:    decimal.RequireFromString("3.75"),
			Currency:  domain.CurrencyUSD,
			Date:      time.Date(2024, 3, 2, 8, 30, 0, 0, shanghai),
		}},
		Stats: map[domain.OrderType]decimal.Decimal{
			domain.OrderExpense: decimal.RequireFromString("10.25"),
			"refund":            decimal.NewFromInt(4),
		},
	}

	raw, err := json.Marshal(ToQueryOrdersResponse(result))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total": 5,
		"orders": [{
			"id": "6f1c1c2e-7c1a-4d55-9a43-3f1b7a0e9d21",
			"name": "coffee",
			"order_type": "expense",
			"amount": 3.75,
			"currency": "USD",
			"date": "2024-03-02T00:30:00Z",
			"remark": null
		}],
		"stat": {"expense": 10.25, "refund": 4}
	}`, string(raw))
}

func TestToQueryOrdersResponse_EmptyResultEncodesEmptyCollections(t *testing.T) {
	raw, err := json.Marshal(ToQueryOrdersResponse(&domain.OrderQueryResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":0,"orders":[],"stat":{}}`, string(raw))
}

func TestQueryOrdersParams_ToOrderQuery(t *testing.T) {
	page, size := 3, 20
	name := "rent"

	q := QueryOrdersParams{Page: &page, PageSize: &size, Name: &name}.ToOrderQuery()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, &name, q.Name)
	assert.Nil(t, q.OrderType)

	empty := QueryOrdersParams{}.ToOrderQuery()
	assert.Zero(t, empty.Page)
	assert.Zero(t, empty.PageSize)
}
