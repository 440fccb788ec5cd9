package report

import "github.com/tmoller/salesreports/internal/dataset"

// CountItems counts units per product within one order. A repeated
// product id means multiple units. An order with no items yields an
// empty map; it still totals to exact zero rather than being dropped.
func CountItems(o dataset.Order) Quantities {
	q := make(Quantities, len(o.Items))
	for _, productID := range o.Items {
		q[productID]++
	}
	return q
}

// MergeQuantities folds src into dst, adding counts for products both
// maps contain. Counts are added, never overwritten: a customer with
// two orders of the same product spends on the sum of both.
func MergeQuantities(dst, src Quantities) {
	for productID, count := range src {
		dst[productID] += count
	}
}

// groupQuantities reads every order once and accumulates per-key
// product quantities, keyed by keyOf (order id for the order-price
// report, customer id for the ranking). Keys come back in order of
// first appearance so report output is deterministic per input.
// Orders sharing a key merge their quantity maps additively.
func groupQuantities(orders dataset.Source, keyOf func(dataset.Order) int64) ([]int64, map[int64]Quantities, error) {
	var keys []int64
	groups := make(map[int64]Quantities)

	err := dataset.EachOrder(orders, func(o dataset.Order) error {
		key := keyOf(o)
		existing, ok := groups[key]
		if !ok {
			keys = append(keys, key)
			existing = make(Quantities, len(o.Items))
			groups[key] = existing
		}
		MergeQuantities(existing, CountItems(o))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return keys, groups, nil
}

// referencedProducts unions every product id that appears in at least
// one quantity map. The price index is restricted to this set.
func referencedProducts(groups map[int64]Quantities) map[int64]struct{} {
	want := make(map[int64]struct{})
	for _, q := range groups {
		for productID := range q {
			want[productID] = struct{}{}
		}
	}
	return want
}
