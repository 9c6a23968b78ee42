package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kilincfaruk/FuatAtolye/internal/ledger"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
)

func TestDashboard(t *testing.T) {
	aliID := uuid.New()
	veliID := uuid.New()
	snap := snapshot.Snapshot{
		Customers: []models.Customer{
			{ID: aliID, Name: "Ali"},
			{ID: veliID, Name: "Veli"},
		},
		Jobs: []models.JobEntry{
			{
				ID:         uuid.New(),
				CustomerID: aliID,
				JobType:    "YALDIZ",
				Quantity:   1,
				UnitPrice:  decimal.RequireFromString("300"),
				Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:         uuid.New(),
				CustomerID: veliID,
				JobType:    "ZİNCİR TAMİRİ",
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("100"),
				Date:       time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				// Outside the requested window, must not count.
				ID:         uuid.New(),
				CustomerID: aliID,
				JobType:    "MİNE",
				Quantity:   1,
				UnitPrice:  decimal.RequireFromString("999"),
				Date:       time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		Expenses: []models.Expense{
			{ID: uuid.New(), Amount: decimal.RequireFromString("120"), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), Amount: decimal.RequireFromString("75"), Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	store := loadedStore(t, snap)

	req := httptest.NewRequest(http.MethodGet, "/?from=2024-03-01&to=2024-03-31", nil)
	resp := httptest.NewRecorder()
	Dashboard(store, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data ledger.Stats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := envelope.Data.TotalCashCharged.String(); got != "500" {
		t.Fatalf("unexpected total cash charged %s", got)
	}
	if got := envelope.Data.TotalExpenses.String(); got != "120" {
		t.Fatalf("unexpected total expenses %s", got)
	}
	if len(envelope.Data.Customers) != 2 {
		t.Fatalf("expected 2 customers with activity, got %d", len(envelope.Data.Customers))
	}
}

func TestDashboardRejectsInvertedWindow(t *testing.T) {
	store := loadedStore(t, snapshot.Snapshot{})

	req := httptest.NewRequest(http.MethodGet, "/?from=2024-03-31&to=2024-03-01", nil)
	resp := httptest.NewRecorder()
	Dashboard(store, testLogger()).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
