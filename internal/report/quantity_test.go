package report

import (
	"testing"

	"github.com/tmoller/salesreports/internal/dataset"
)

func TestCountItems(t *testing.T) {
	tests := []struct {
		name  string
		items []int64
		want  Quantities
	}{
		{
			name:  "empty order yields empty map",
			items: nil,
			want:  Quantities{},
		},
		{
			name:  "distinct items",
			items: []int64{5, 6},
			want:  Quantities{5: 1, 6: 1},
		},
		{
			name:  "repeated id counts units",
			items: []int64{5, 5, 6, 5},
			want:  Quantities{5: 3, 6: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountItems(dataset.Order{ID: 1, CustomerID: 100, Items: tt.items})
			if len(got) != len(tt.want) {
				t.Fatalf("CountItems = %v, want %v", got, tt.want)
			}
			for productID, count := range tt.want {
				if got[productID] != count {
					t.Errorf("count[%d] = %d, want %d", productID, got[productID], count)
				}
			}
		})
	}
}

func TestMergeQuantities_AddsCounts(t *testing.T) {
	dst := Quantities{5: 2, 6: 1}
	MergeQuantities(dst, Quantities{5: 3, 7: 4})

	want := Quantities{5: 5, 6: 1, 7: 4}
	if len(dst) != len(want) {
		t.Fatalf("merged = %v, want %v", dst, want)
	}
	for productID, count := range want {
		if dst[productID] != count {
			t.Errorf("merged[%d] = %d, want %d", productID, dst[productID], count)
		}
	}
}

func TestGroupQuantities_FirstAppearanceOrder(t *testing.T) {
	orders := dataset.StringSource{Data: "id,customerId,items\n" +
		"3,100,5\n" +
		"1,200,6\n" +
		"2,100,7\n"}

	keys, groups, err := groupQuantities(orders, func(o dataset.Order) int64 { return o.ID })
	if err != nil {
		t.Fatalf("groupQuantities error = %v", err)
	}

	wantKeys := []int64{3, 1, 2}
	if len(keys) != len(wantKeys) {
		t.Fatalf("keys = %v, want %v", keys, wantKeys)
	}
	for i, k := range wantKeys {
		if keys[i] != k {
			t.Errorf("keys[%d] = %d, want %d", i, keys[i], k)
		}
	}
	if len(groups) != 3 {
		t.Errorf("groups = %v", groups)
	}
}

func TestGroupQuantities_MergesByCustomer(t *testing.T) {
	orders := dataset.StringSource{Data: "id,customerId,items\n" +
		"1,100,5 5\n" +
		"2,100,5 6\n"}

	keys, groups, err := groupQuantities(orders, func(o dataset.Order) int64 { return o.CustomerID })
	if err != nil {
		t.Fatalf("groupQuantities error = %v", err)
	}

	if len(keys) != 1 || keys[0] != 100 {
		t.Fatalf("keys = %v, want [100]", keys)
	}
	q := groups[100]
	if q[5] != 3 || q[6] != 1 {
		t.Errorf("merged quantities = %v, want map[5:3 6:1]", q)
	}
}
