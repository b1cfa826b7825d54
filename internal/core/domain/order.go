package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType classifies a transaction order.
type OrderType string

const (
	OrderExpense  OrderType = "expense"
	OrderIncome   OrderType = "income"
	OrderTransfer OrderType = "transfer"
)

// Supported order currencies.
const (
	CurrencyCNY = "CNY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// ValidOrderTypes lists the order types accepted on create.
var ValidOrderTypes = []OrderType{OrderExpense, OrderIncome, OrderTransfer}

// ValidCurrencies lists the currencies accepted on create.
var ValidCurrencies = []string{CurrencyCNY, CurrencyUSD, CurrencyEUR}

// Order is a single transaction record owned by one user.
//
// OrderType and Currency are only validated when an order is created. Stored
// rows may predate that validation, so readers must treat both as opaque.
type Order struct {
	OrderID   uuid.UUID       `json:"orderID"`
	Name      string          `json:"name"`
	OrderType OrderType       `json:"orderType"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Date      time.Time       `json:"date"`
	Remark    *string         `json:"remark,omitempty"`
	OwnedFields
}

// OrderQuery holds the criteria of an order query. Nil fields are inactive.
// DateStart and DateEnd are kept raw: the range filter only applies when both parse.
type OrderQuery struct {
	Page      int
	PageSize  int
	Name      *string
	OrderType *string
	DateStart *string
	DateEnd   *string
}

// OrderQueryResult is the outcome of an order query.
//
// Total and Stats cover every order that passed the filters; Orders is only
// the requested page of them.
type OrderQueryResult struct {
	Total  int
	Orders []Order
	Stats  map[OrderType]decimal.Decimal
}
