package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input rows are comma-separated. The order items field is a
// whitespace-separated id list nested inside one comma-separated field,
// optionally wrapped in double quotes.
const fieldSep = ","

// MalformedRecordError reports a field that could not be parsed as its
// expected type. Line is 1-based within the source file (the header is
// line 1) and is filled in by EachRecord; parse functions leave it zero.
type MalformedRecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed field %q: %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed field %q: %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ParseOrder parses one orders row: id,customerId,"<productId> <productId> ...".
// An empty items field is valid and yields an order with no items.
func ParseOrder(line string) (Order, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return Order{}, missingField("items", line)
	}

	id, err := parseInt("id", fields[0])
	if err != nil {
		return Order{}, err
	}
	customerID, err := parseInt("customerId", fields[1])
	if err != nil {
		return Order{}, err
	}

	// The id list may be quoted in the raw file; the quotes are not part
	// of the data.
	rawItems := strings.Trim(fields[2], `"`)
	itemFields := strings.Fields(rawItems)
	items := make([]int64, 0, len(itemFields))
	for _, f := range itemFields {
		item, err := parseInt("items", f)
		if err != nil {
			return Order{}, err
		}
		items = append(items, item)
	}

	return Order{ID: id, CustomerID: customerID, Items: items}, nil
}

// ParseProduct parses one products row: id,<unused>,price.
func ParseProduct(line string) (Product, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return Product{}, missingField("price", line)
	}

	id, err := parseInt("id", fields[0])
	if err != nil {
		return Product{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return Product{}, &MalformedRecordError{Field: "price", Value: fields[2], Err: err}
	}

	return Product{ID: id, Price: price}, nil
}

// ParseCustomer parses one customers row: id,firstName,lastName.
func ParseCustomer(line string) (Customer, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return Customer{}, missingField("lastName", line)
	}

	id, err := parseInt("id", fields[0])
	if err != nil {
		return Customer{}, err
	}

	return Customer{ID: id, FirstName: fields[1], LastName: fields[2]}, nil
}

// RecordID parses the leading id field of any dataset row without
// touching the rest of the record. The filtered index builders use it
// to decide whether a row is worth parsing at all.
func RecordID(line string) (int64, error) {
	id, _, _ := strings.Cut(line, fieldSep)
	return parseInt("id", id)
}

func parseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

func missingField(field, line string) *MalformedRecordError {
	return &MalformedRecordError{Field: field, Value: line, Err: fmt.Errorf("record has too few fields")}
}
