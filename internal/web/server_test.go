package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmoller/salesreports/internal/config"
	"github.com/tmoller/salesreports/internal/dataset"
	"github.com/tmoller/salesreports/internal/report"
)

func testServer(orders, products, customers string) *Server {
	cfg := config.MustLoad()
	return NewServer(cfg, report.Sources{
		Orders:    dataset.StringSource{Data: "id,customerId,items\n" + orders},
		Products:  dataset.StringSource{Data: "id,name,price\n" + products},
		Customers: dataset.StringSource{Data: "id,firstname,lastname\n" + customers},
	})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := testServer("", "", "")
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestListReports(t *testing.T) {
	s := testServer("", "", "")
	rec := get(t, s, "/api/reports")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []ReportInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("got %d reports, want 3", len(infos))
	}
	keys := map[string]bool{}
	for _, info := range infos {
		keys[info.Key] = true
	}
	for _, want := range []string{"order_prices", "product_customers", "customer_ranking"} {
		if !keys[want] {
			t.Errorf("report %q missing from listing", want)
		}
	}
}

func TestDownloadReport(t *testing.T) {
	s := testServer("1,100,5 5 6\n", "5,p,2.50\n6,p,1.00\n", "100,John,Doe\n")

	rec := get(t, s, "/api/reports/order_prices")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="order_prices.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	want := "id,euros\n1,6.00\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestDownloadReport_EmptyOrders(t *testing.T) {
	s := testServer("", "5,p,2.50\n", "100,John,Doe\n")

	rec := get(t, s, "/api/reports/customer_ranking")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	want := "id,firstname,lastname,total_euros\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestDownloadReport_NotFound(t *testing.T) {
	s := testServer("", "", "")
	rec := get(t, s, "/api/reports/bogus")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDownloadReport_UnresolvedReference(t *testing.T) {
	s := testServer("1,100,42\n", "5,p,2.50\n", "100,John,Doe\n")

	rec := get(t, s, "/api/reports/order_prices")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", rec.Code, rec.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != "unresolved_reference" {
		t.Errorf("Code = %q, want %q", resp.Code, "unresolved_reference")
	}
}

func TestDownloadReport_MalformedDataset(t *testing.T) {
	s := testServer("1,abc,5\n", "5,p,2.50\n", "100,John,Doe\n")

	rec := get(t, s, "/api/reports/order_prices")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != "malformed_record" {
		t.Errorf("Code = %q, want %q", resp.Code, "malformed_record")
	}
}

func TestDownloadReport_MissingSource(t *testing.T) {
	cfg := config.MustLoad()
	s := NewServer(cfg, report.Sources{
		Orders:    dataset.FileSource{Path: "/nonexistent/orders.csv"},
		Products:  dataset.FileSource{Path: "/nonexistent/products.csv"},
		Customers: dataset.FileSource{Path: "/nonexistent/customers.csv"},
	})

	rec := get(t, s, "/api/reports/order_prices")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
