// Package report implements the join/aggregation core shared by the
// three sales reports: order prices, product customers, and customer
// ranking. Every calculator is a pure function of its input sources;
// nothing is cached between calls.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tmoller/salesreports/internal/dataset"
)

// Quantities maps a product id to a unit count within one grouping key
// (a single order, or all of a customer's orders merged).
type Quantities map[int64]int64

// OrderTotal is the computed monetary value of one order.
type OrderTotal struct {
	OrderID int64
	Total   decimal.Decimal
}

// ProductCustomers lists the distinct customers who ordered a product
// at least once. CustomerIDs is sorted ascending.
type ProductCustomers struct {
	ProductID   int64
	CustomerIDs []int64
}

// RankedCustomer is one row of the customer ranking: a customer with at
// least one order and their total spend across all orders.
type RankedCustomer struct {
	Customer dataset.Customer
	Total    decimal.Decimal
}

// UnresolvedReferenceError reports an order that references a product
// or customer id absent from its dataset. The join cannot complete, so
// the whole report fails; partial results are never produced.
type UnresolvedReferenceError struct {
	Kind string // "product" or "customer"
	ID   int64
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("order references unknown %s %d", e.Kind, e.ID)
}
