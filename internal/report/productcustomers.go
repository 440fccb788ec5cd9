package report

import (
	"sort"

	"github.com/tmoller/salesreports/internal/dataset"
)

// ProductCustomerSets associates every product with the set of
// customers who ordered it at least once.
//
// Each order contributes its distinct product ids paired with the
// order's customer id; multiplicity within an order is irrelevant here,
// unlike the price reports where it multiplies price. The association
// is idempotent: ordering a product twice, in one order or across two,
// still contributes the customer once. Rows come back in
// first-appearance order of the product id, customer ids sorted
// ascending within each row.
func ProductCustomerSets(orders dataset.Source) ([]ProductCustomers, error) {
	var productIDs []int64
	customers := make(map[int64]map[int64]struct{})

	err := dataset.EachOrder(orders, func(o dataset.Order) error {
		// Walk the item list rather than the quantity map so the
		// first-appearance order of products stays deterministic.
		seen := make(map[int64]struct{}, len(o.Items))
		for _, productID := range o.Items {
			if _, dup := seen[productID]; dup {
				continue
			}
			seen[productID] = struct{}{}

			set, ok := customers[productID]
			if !ok {
				productIDs = append(productIDs, productID)
				set = make(map[int64]struct{})
				customers[productID] = set
			}
			set[o.CustomerID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]ProductCustomers, 0, len(productIDs))
	for _, productID := range productIDs {
		set := customers[productID]
		ids := make([]int64, 0, len(set))
		for customerID := range set {
			ids = append(ids, customerID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		result = append(result, ProductCustomers{ProductID: productID, CustomerIDs: ids})
	}
	return result, nil
}
