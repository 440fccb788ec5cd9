package dataset

import (
	"errors"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		wantID         int64
		wantCustomerID int64
		wantItems      []int64
		wantErr        bool
	}{
		{
			name:           "single item",
			line:           "1,100,5",
			wantID:         1,
			wantCustomerID: 100,
			wantItems:      []int64{5},
		},
		{
			name:           "repeated items keep duplicates and order",
			line:           "1,100,5 5 6",
			wantID:         1,
			wantCustomerID: 100,
			wantItems:      []int64{5, 5, 6},
		},
		{
			name:           "quoted item list",
			line:           `2,200,"7 8"`,
			wantID:         2,
			wantCustomerID: 200,
			wantItems:      []int64{7, 8},
		},
		{
			name:           "empty item list",
			line:           "3,300,",
			wantID:         3,
			wantCustomerID: 300,
			wantItems:      []int64{},
		},
		{
			name:    "non-numeric id",
			line:    "abc,100,5",
			wantErr: true,
		},
		{
			name:    "non-numeric customer id",
			line:    "1,abc,5",
			wantErr: true,
		},
		{
			name:    "non-numeric item",
			line:    "1,100,5 x 6",
			wantErr: true,
		},
		{
			name:    "missing items field",
			line:    "1,100",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := ParseOrder(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOrder(%q) expected error", tt.line)
				}
				var malformed *MalformedRecordError
				if !errors.As(err, &malformed) {
					t.Errorf("ParseOrder(%q) error = %T, want *MalformedRecordError", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrder(%q) error = %v", tt.line, err)
			}
			if order.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", order.ID, tt.wantID)
			}
			if order.CustomerID != tt.wantCustomerID {
				t.Errorf("CustomerID = %d, want %d", order.CustomerID, tt.wantCustomerID)
			}
			if len(order.Items) != len(tt.wantItems) {
				t.Fatalf("Items = %v, want %v", order.Items, tt.wantItems)
			}
			for i, item := range order.Items {
				if item != tt.wantItems[i] {
					t.Errorf("Items[%d] = %d, want %d", i, item, tt.wantItems[i])
				}
			}
		})
	}
}

func TestParseProduct(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantID    int64
		wantPrice string
		wantErr   bool
	}{
		{
			name:      "decimal price",
			line:      "5,widget,2.50",
			wantID:    5,
			wantPrice: "2.50",
		},
		{
			name:      "integer price",
			line:      "6,thing,1",
			wantID:    6,
			wantPrice: "1",
		},
		{
			name:      "middle field ignored",
			line:      "7,,0.99",
			wantID:    7,
			wantPrice: "0.99",
		},
		{
			name:    "non-numeric price",
			line:    "5,widget,cheap",
			wantErr: true,
		},
		{
			name:    "missing price field",
			line:    "5,widget",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := ParseProduct(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseProduct(%q) expected error", tt.line)
				}
				var malformed *MalformedRecordError
				if !errors.As(err, &malformed) {
					t.Errorf("ParseProduct(%q) error = %T, want *MalformedRecordError", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProduct(%q) error = %v", tt.line, err)
			}
			if product.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", product.ID, tt.wantID)
			}
			if product.Price.String() != tt.wantPrice {
				t.Errorf("Price = %s, want %s", product.Price.String(), tt.wantPrice)
			}
		})
	}
}

func TestParseCustomer(t *testing.T) {
	customer, err := ParseCustomer("100,John,Doe")
	if err != nil {
		t.Fatalf("ParseCustomer error = %v", err)
	}
	if customer.ID != 100 || customer.FirstName != "John" || customer.LastName != "Doe" {
		t.Errorf("ParseCustomer = %+v, want {100 John Doe}", customer)
	}

	if _, err := ParseCustomer("x,John,Doe"); err == nil {
		t.Error("ParseCustomer with non-numeric id expected error")
	}
	if _, err := ParseCustomer("100,John"); err == nil {
		t.Error("ParseCustomer with missing field expected error")
	}
}
