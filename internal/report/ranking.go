package report

import (
	"sort"

	"github.com/tmoller/salesreports/internal/dataset"
)

// CustomerRanking ranks customers by total spend, descending.
//
// Orders group by customer id first, merging quantity maps additively
// across a customer's orders, so a customer with totals A and B ranks
// by A+B. Identities load through the same restriction-before-load pass
// as prices: only customers who placed an order are read. A customer id
// with a total but no identity record fails the report. Customers with
// zero orders never appear; the join is inner.
//
// Ties on total keep first-appearance order of the customer in the
// orders dataset (stable sort).
func CustomerRanking(orders, products, customers dataset.Source) ([]RankedCustomer, error) {
	customerIDs, groups, err := groupQuantities(orders, func(o dataset.Order) int64 { return o.CustomerID })
	if err != nil {
		return nil, err
	}

	prices, err := BuildPriceIndex(products, referencedProducts(groups))
	if err != nil {
		return nil, err
	}

	identities, err := buildCustomerIndex(customers, groups)
	if err != nil {
		return nil, err
	}

	ranking := make([]RankedCustomer, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		total, err := prices.Total(groups[customerID])
		if err != nil {
			return nil, err
		}
		identity, ok := identities[customerID]
		if !ok {
			return nil, &UnresolvedReferenceError{Kind: "customer", ID: customerID}
		}
		ranking = append(ranking, RankedCustomer{Customer: identity, Total: total})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total.GreaterThan(ranking[j].Total)
	})
	return ranking, nil
}

// buildCustomerIndex scans the customers dataset once, keeping only the
// customers that placed at least one order. Like the price index, rows
// are filtered by id before the full record is parsed.
func buildCustomerIndex(customers dataset.Source, groups map[int64]Quantities) (map[int64]dataset.Customer, error) {
	idx := make(map[int64]dataset.Customer, len(groups))
	err := dataset.EachRecord(customers, func(line string, _ int) error {
		id, err := dataset.RecordID(line)
		if err != nil {
			return err
		}
		if _, ok := groups[id]; !ok {
			return nil
		}
		c, err := dataset.ParseCustomer(line)
		if err != nil {
			return err
		}
		idx[c.ID] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}
