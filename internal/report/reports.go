package report

import (
	"strconv"
	"strings"
)

// Report keys. These double as the base names of the output files.
const (
	KeyOrderPrices      = "order_prices"
	KeyProductCustomers = "product_customers"
	KeyCustomerRanking  = "customer_ranking"
)

func init() {
	Register(Definition{
		Key:      KeyOrderPrices,
		FileName: KeyOrderPrices + ".csv",
		Header:   []string{"id", "euros"},
		Compute: func(src Sources) ([][]string, error) {
			totals, err := OrderPrices(src.Orders, src.Products)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, 0, len(totals))
			for _, t := range totals {
				rows = append(rows, []string{formatID(t.OrderID), t.Total.String()})
			}
			return rows, nil
		},
	})

	Register(Definition{
		Key:      KeyProductCustomers,
		FileName: KeyProductCustomers + ".csv",
		Header:   []string{"id", "customer_ids"},
		Compute: func(src Sources) ([][]string, error) {
			sets, err := ProductCustomerSets(src.Orders)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, 0, len(sets))
			for _, s := range sets {
				ids := make([]string, 0, len(s.CustomerIDs))
				for _, id := range s.CustomerIDs {
					ids = append(ids, formatID(id))
				}
				rows = append(rows, []string{formatID(s.ProductID), strings.Join(ids, " ")})
			}
			return rows, nil
		},
	})

	Register(Definition{
		Key:      KeyCustomerRanking,
		FileName: KeyCustomerRanking + ".csv",
		Header:   []string{"id", "firstname", "lastname", "total_euros"},
		Compute: func(src Sources) ([][]string, error) {
			ranking, err := CustomerRanking(src.Orders, src.Products, src.Customers)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, 0, len(ranking))
			for _, r := range ranking {
				rows = append(rows, []string{
					formatID(r.Customer.ID),
					r.Customer.FirstName,
					r.Customer.LastName,
					r.Total.String(),
				})
			}
			return rows, nil
		},
	})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
