package routes

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/vanshajvr/FinTrack/internal/storage"
	"github.com/vanshajvr/FinTrack/models"

	"gorm.io/driver/sqlite"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	s, err := storage.Open(sqlite.Open(filepath.Join(t.TempDir(), "finance.db")), storage.Options{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return Register(s, []string{"http://localhost:3000"}, zerolog.Nop())
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestAddListSummaryFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/transactions", `{"amount":1000,"type":"income","category":"Salary"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201 got %d: %s", w.Code, w.Body.String())
	}
	var created models.Transaction
	decode(t, w, &created)
	if created.ID == 0 || created.Date.IsZero() || created.Currency != "INR" {
		t.Fatalf("unexpected created transaction %+v", created)
	}

	w = do(t, r, http.MethodPost, "/api/v1/transactions", `{"amount":"200","type":"expense","category":"Rent","currency":"inr","notes":"march"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201 got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/v1/transactions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	var list []models.Transaction
	decode(t, w, &list)
	if len(list) != 2 || list[0].ID != created.ID || list[1].Category != "Rent" || list[1].Currency != "INR" {
		t.Fatalf("unexpected list %+v", list)
	}

	w = do(t, r, http.MethodGet, "/api/v1/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	var sum models.Summary
	decode(t, w, &sum)
	if !sum.TotalIncome.Equal(decimal.NewFromInt(1000)) || !sum.TotalExpenses.Equal(decimal.NewFromInt(200)) || !sum.Balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestSummaryPerCurrency(t *testing.T) {
	r := newTestRouter(t)
	for _, b := range []string{
		`{"amount":1000,"type":"income","category":"Salary","currency":"INR"}`,
		`{"amount":200,"type":"expense","category":"Sushi","currency":"JPY"}`,
		`{"amount":150,"type":"expense","category":"Food","currency":"INR"}`,
	} {
		if w := do(t, r, http.MethodPost, "/api/v1/transactions", b); w.Code != http.StatusCreated {
			t.Fatalf("seed %s: %d", b, w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/api/v1/summary?currency=inr", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d: %s", w.Code, w.Body.String())
	}
	var sum models.Summary
	decode(t, w, &sum)
	if !sum.TotalExpenses.Equal(decimal.NewFromInt(150)) || !sum.Balance.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("INR summary includes other currencies: %+v", sum)
	}

	w = do(t, r, http.MethodGet, "/api/v1/transactions?currency=JPY", "")
	var list []models.Transaction
	decode(t, w, &list)
	if len(list) != 1 || list[0].Category != "Sushi" {
		t.Fatalf("list filter not applied: %+v", list)
	}

	w = do(t, r, http.MethodGet, "/api/v1/reports/currencies", "")
	var per []models.CurrencySummary
	decode(t, w, &per)
	if len(per) != 2 || per[0].Currency != "INR" || !per[1].Balance.Equal(decimal.NewFromInt(-200)) {
		t.Fatalf("unexpected per-currency report %+v", per)
	}

	today := time.Now().UTC().Format("2006-01-02")
	w = do(t, r, http.MethodGet, "/api/v1/reports/daily?from="+today+"&to="+today, "")
	var days []models.DailyTotal
	decode(t, w, &days)
	if len(days) != 2 || days[0].Day != today {
		t.Fatalf("unexpected daily report %+v", days)
	}

	for _, q := range []string{
		"/api/v1/summary?currency=QQQ",
		"/api/v1/summary?from=yesterday",
		"/api/v1/reports/daily?from=2025-03-10&to=2025-03-01",
		"/api/v1/transactions/export?from=2025-13-01",
	} {
		if w := do(t, r, http.MethodGet, q, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400 got %d", q, w.Code)
		}
	}
}

func TestOversizedAmountIsRejected(t *testing.T) {
	r := newTestRouter(t)
	for _, amount := range []string{"1e400", "1e14"} {
		w := do(t, r, http.MethodPost, "/api/v1/transactions", `{"amount":`+amount+`,"type":"income","category":"Salary"}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "amount must be at most") {
			t.Fatalf("%s: want 400 got %d %s", amount, w.Code, w.Body.String())
		}
	}
	for _, path := range []string{"/api/v1/transactions", "/api/v1/summary", "/api/v1/transactions/export"} {
		if w := do(t, r, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: want 200 got %d", path, w.Code)
		}
	}
}

func TestPanicKeepsErrorEnvelope(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(*gin.Context) { panic("boom") })
	w := do(t, r, http.MethodGet, "/boom", "")
	if w.Code != http.StatusInternalServerError || strings.TrimSpace(w.Body.String()) != `{"error":"internal error"}` {
		t.Fatalf("unexpected panic response %d %q", w.Code, w.Body.String())
	}
}

func TestRejectedTransactions(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"negative amount", `{"amount":-50,"type":"expense","category":"Food"}`, "amount must be greater than 0"},
		{"bad type", `{"amount":5,"type":"gift","category":"Food"}`, "type must be 'income' or 'expense'"},
		{"missing category", `{"amount":5,"type":"expense"}`, "category is required"},
		{"not a number", `{"amount":"ten","type":"expense","category":"Food"}`, "invalid request body"},
		{"empty body", ``, "invalid request body"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(c.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400 got %d: %s", w.Code, w.Body.String())
			}
			var e struct {
				Error string `json:"error"`
			}
			decode(t, w, &e)
			if e.Error != c.msg {
				t.Fatalf("want %q got %q", c.msg, e.Error)
			}
		})
	}

	w := do(t, r, http.MethodGet, "/api/v1/transactions", "")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("rejected input changed the store: %s", w.Body.String())
	}
}

func TestReportsAndCategories(t *testing.T) {
	r := newTestRouter(t)
	for _, b := range []string{
		`{"amount":50,"type":"expense","category":"Food"}`,
		`{"amount":70,"type":"expense","category":"Food"}`,
		`{"amount":300,"type":"expense","category":"Rent"}`,
		`{"amount":9,"type":"expense","category":"food"}`,
		`{"amount":1000,"type":"income","category":"Salary"}`,
	} {
		if w := do(t, r, http.MethodPost, "/api/v1/transactions", b); w.Code != http.StatusCreated {
			t.Fatalf("seed %s: %d", b, w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/api/v1/reports/categories?limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	var totals []models.CategoryTotal
	decode(t, w, &totals)
	if len(totals) != 1 || totals[0].Category != "Rent" || !totals[0].Total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected totals %+v", totals)
	}

	w = do(t, r, http.MethodGet, "/api/v1/reports/categories?type=income", "")
	decode(t, w, &totals)
	if len(totals) != 1 || totals[0].Category != "Salary" {
		t.Fatalf("unexpected income totals %+v", totals)
	}

	if w := do(t, r, http.MethodGet, "/api/v1/reports/categories?type=savings", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for unknown type got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/reports/categories?limit=-1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for negative limit got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/v1/categories", "")
	var cats []string
	decode(t, w, &cats)
	want := []string{"Food", "Transport", "Shopping", "Bills", "Salary", "Other", "Rent"}
	if strings.Join(cats, ",") != strings.Join(want, ",") {
		t.Fatalf("want %v got %v", want, cats)
	}
}

func TestExport(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodPost, "/api/v1/transactions", `{"amount":12.5,"type":"expense","category":"Transport"}`)

	w := do(t, r, http.MethodGet, "/api/v1/transactions/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "transactions.csv") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	recs, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(recs) != 2 || recs[1][3] != "Transport" || recs[1][4] != "12.50" {
		t.Fatalf("unexpected csv %v", recs)
	}

	w = do(t, r, http.MethodGet, "/api/v1/transactions/export?format=yaml", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/yaml") {
		t.Fatalf("unexpected yaml export %d %q", w.Code, w.Header().Get("Content-Type"))
	}

	if w := do(t, r, http.MethodGet, "/api/v1/transactions/export?format=pdf", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for unknown format got %d", w.Code)
	}
}

func TestHealthAndRequestID(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	var h map[string]any
	decode(t, w, &h)
	if h["status"] != "healthy" || h["db_connected"] != true {
		t.Fatalf("unexpected health %v", h)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("missing request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("request id not propagated: %q", w.Header().Get(requestIDHeader))
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("preflight not allowed: %v", w.Header())
	}

	if cfg := corsConfig([]string{"*"}); !cfg.AllowAllOrigins || cfg.AllowOrigins != nil {
		t.Fatalf("wildcard should allow all origins: %+v", cfg)
	}
	if cfg := corsConfig(nil); !cfg.AllowAllOrigins {
		t.Fatalf("empty origin list should allow all origins")
	}
}
