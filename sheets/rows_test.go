// ABOUTME: Unit tests for the positional row codec
// ABOUTME: Verifies fixed column orders and defensive defaulting
package sheets

import (
	"testing"

	"github.com/harperreed/shopbook/models"
)

func TestRowValuesColumnOrder(t *testing.T) {
	sale := &models.Sale{ID: "s1", Date: "2024-01-01", Description: "Widget", Category: "Hardware", Amount: 50}
	row := rowValues(sale)
	want := []interface{}{"s1", "2024-01-01", "Widget", "Hardware", 50.0}
	if len(row) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestRowValuesTenderEncodesExpenses(t *testing.T) {
	tender := &models.Tender{
		ID:        "t1",
		Reference: "T-42",
		Title:     "Road works",
		CompanyID: "c1",
		Status:    "submitted",
		Date:      "2024-03-01",
		BidAmount: 1000,
		Expenses:  []models.TenderExpense{{Description: "site visit", Amount: 120.5}},
	}

	row := rowValues(tender)
	if len(row) != 9 {
		t.Fatalf("expected 9 tender cells, got %d", len(row))
	}
	if row[8] != `[{"description":"site visit","amount":120.5}]` {
		t.Errorf("expenses cell = %v", row[8])
	}

	// nil expense list still serializes as an empty array
	empty := rowValues(&models.Tender{ID: "t2"})
	if empty[8] != "[]" {
		t.Errorf("nil expenses cell = %v, want []", empty[8])
	}
}

func TestRecordFromRowDefaultsMissingCells(t *testing.T) {
	tests := []struct {
		name string
		kind models.Kind
		row  []interface{}
	}{
		{"short sale row", models.KindSale, []interface{}{"1"}},
		{"short service row", models.KindService, []interface{}{"7", "Ada"}},
		{"short customer row", models.KindCustomer, []interface{}{"c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordFromRow(tt.kind, tt.row)
			if rec == nil {
				t.Fatal("expected a record")
			}
			if rec.RecordID() == "" {
				t.Error("id cell should survive")
			}
		})
	}

	sale := recordFromRow(models.KindSale, []interface{}{"1", nil, "Widget", nil, "not-a-number"}).(*models.Sale)
	if sale.Date != "" || sale.Category != "" {
		t.Errorf("nil cells should default to empty, got %+v", sale)
	}
	if sale.Amount != 0 {
		t.Errorf("malformed amount should default to 0, got %v", sale.Amount)
	}
}

func TestRecordFromRowParsesNumbers(t *testing.T) {
	sale := recordFromRow(models.KindSale, []interface{}{"1", "2024-01-01", "Widget", "Hardware", "50"}).(*models.Sale)
	if sale.Amount != 50 {
		t.Errorf("string amount should parse, got %v", sale.Amount)
	}

	customer := recordFromRow(models.KindCustomer, []interface{}{"c1", "Ada", "555", "a@b.c", "Main St", 12.5}).(*models.Customer)
	if customer.Balance != 12.5 {
		t.Errorf("float balance should pass through, got %v", customer.Balance)
	}
}

func TestRecordFromRowTenderExpenses(t *testing.T) {
	row := []interface{}{"t1", "T-1", "Title", "c1", "won", "2024-01-01", "1000", "900", `[{"description":"fuel","amount":30}]`}
	tender := recordFromRow(models.KindTender, row).(*models.Tender)
	if len(tender.Expenses) != 1 || tender.Expenses[0].Description != "fuel" {
		t.Errorf("expenses not decoded: %+v", tender.Expenses)
	}

	// Malformed JSON defaults to no line items, never an error
	row[8] = "{broken"
	tender = recordFromRow(models.KindTender, row).(*models.Tender)
	if tender.Expenses != nil {
		t.Errorf("malformed expenses should default to nil, got %+v", tender.Expenses)
	}
	if tender.BidAmount != 1000 {
		t.Errorf("rest of the row should still decode, bid = %v", tender.BidAmount)
	}
}

func TestRangesPerKind(t *testing.T) {
	tests := []struct {
		kind   models.Kind
		data   string
		append string
	}{
		{models.KindSale, "Sales!A2:E", "Sales!A:E"},
		{models.KindExpense, "Expenses!A2:E", "Expenses!A:E"},
		{models.KindTender, "Tenders!A2:I", "Tenders!A:I"},
		{models.KindService, "Services!A2:I", "Services!A:I"},
		{models.KindCustomer, "Customers!A2:F", "Customers!A:F"},
		{models.KindCompany, "Companies!A2:E", "Companies!A:E"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := dataRange(tt.kind); got != tt.data {
				t.Errorf("dataRange = %q, want %q", got, tt.data)
			}
			if got := appendRange(tt.kind); got != tt.append {
				t.Errorf("appendRange = %q, want %q", got, tt.append)
			}
			if len(headerRow(tt.kind)) == 0 {
				t.Error("headerRow should not be empty")
			}
		})
	}
}
