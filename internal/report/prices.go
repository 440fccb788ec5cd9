package report

import (
	"github.com/shopspring/decimal"
	"github.com/tmoller/salesreports/internal/dataset"
)

// PriceIndex maps a product id to its unit price.
type PriceIndex map[int64]decimal.Decimal

// BuildPriceIndex scans the products dataset once and keeps only the
// rows whose id is in want. Rows are filtered by id before the rest of
// the record is parsed, so unreferenced product rows are never loaded.
// A requested id missing from the dataset simply produces no entry; the
// gap surfaces as an UnresolvedReferenceError when the join looks it up.
func BuildPriceIndex(products dataset.Source, want map[int64]struct{}) (PriceIndex, error) {
	idx := make(PriceIndex, len(want))
	err := dataset.EachRecord(products, func(line string, _ int) error {
		id, err := dataset.RecordID(line)
		if err != nil {
			return err
		}
		if _, ok := want[id]; !ok {
			return nil
		}
		p, err := dataset.ParseProduct(line)
		if err != nil {
			return err
		}
		idx[p.ID] = p.Price
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Total computes the monetary value of one quantity map: the sum of
// price times quantity over every entry, accumulated from exact decimal
// zero. An empty map totals zero. A product id absent from the index
// fails the computation; there is no default price.
func (idx PriceIndex) Total(q Quantities) (decimal.Decimal, error) {
	total := decimal.Zero
	for productID, count := range q {
		price, ok := idx[productID]
		if !ok {
			return decimal.Decimal{}, &UnresolvedReferenceError{Kind: "product", ID: productID}
		}
		total = total.Add(price.Mul(decimal.NewFromInt(count)))
	}
	return total, nil
}
