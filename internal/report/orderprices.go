package report

import "github.com/tmoller/salesreports/internal/dataset"

// OrderPrices computes the total monetary value of every order.
//
// One pass over orders groups unit counts per order id, a second
// filtered pass over products builds the restricted price index, then
// each order's quantity map joins against the index. Rows come back in
// first-appearance order of the order id. Any order referencing a
// product absent from the products dataset fails the whole report.
func OrderPrices(orders, products dataset.Source) ([]OrderTotal, error) {
	orderIDs, groups, err := groupQuantities(orders, func(o dataset.Order) int64 { return o.ID })
	if err != nil {
		return nil, err
	}

	prices, err := BuildPriceIndex(products, referencedProducts(groups))
	if err != nil {
		return nil, err
	}

	totals := make([]OrderTotal, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		total, err := prices.Total(groups[orderID])
		if err != nil {
			return nil, err
		}
		totals = append(totals, OrderTotal{OrderID: orderID, Total: total})
	}
	return totals, nil
}
