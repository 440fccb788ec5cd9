// Package dataset provides typed access to the three input datasets:
// orders, products, and customers. It owns record parsing and the
// restartable line sources the report calculators read from.
// This package has no knowledge of reports; it only produces records.
package dataset

import "github.com/shopspring/decimal"

// Order is one row of the orders dataset.
//
// Items preserves duplicates and input order: a product id appearing
// twice means two units of that product.
type Order struct {
	ID         int64
	CustomerID int64
	Items      []int64
}

// Product is one row of the products dataset. The middle input column
// carries no information this system uses and is not retained.
type Product struct {
	ID    int64
	Price decimal.Decimal
}

// Customer is one row of the customers dataset.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
}
