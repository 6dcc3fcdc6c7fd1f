// ABOUTME: Unit tests for record kinds and id generation
// ABOUTME: Covers kind parsing, sheet mapping, and ULID ordering
package models

import "testing"

func TestKindSheetNames(t *testing.T) {
	tests := []struct {
		kind  Kind
		sheet string
	}{
		{KindSale, "Sales"},
		{KindExpense, "Expenses"},
		{KindTender, "Tenders"},
		{KindService, "Services"},
		{KindCustomer, "Customers"},
		{KindCompany, "Companies"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.SheetName(); got != tt.sheet {
				t.Errorf("SheetName() = %q, want %q", got, tt.sheet)
			}
		})
	}

	if got := Kind("bogus").SheetName(); got != "" {
		t.Errorf("SheetName() for unknown kind = %q, want empty", got)
	}
}

func TestKindFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{"sale", KindSale, true},
		{"sales", KindSale, true},
		{"expense", KindExpense, true},
		{"tender", KindTender, true},
		{"service", KindService, true},
		{"customer", KindCustomer, true},
		{"company", KindCompany, true},
		{"companies", KindCompany, true},
		{"", "", false},
		{"widgets", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := KindFromString(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("KindFromString(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKindsCoverEveryRecordType(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 6 {
		t.Fatalf("expected 6 kinds, got %d", len(kinds))
	}
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("kind %q reported invalid", k)
		}
		rec := NewRecord(k)
		if rec == nil {
			t.Fatalf("NewRecord(%q) returned nil", k)
		}
		if rec.Kind() != k {
			t.Errorf("NewRecord(%q).Kind() = %q", k, rec.Kind())
		}
		if rec.Meta() == nil {
			t.Errorf("NewRecord(%q).Meta() returned nil", k)
		}
	}

	if NewRecord(Kind("bogus")) != nil {
		t.Error("NewRecord for unknown kind should return nil")
	}
}

func TestRecordIDRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		rec := NewRecord(k)
		rec.SetRecordID("abc123")
		if got := rec.RecordID(); got != "abc123" {
			t.Errorf("%s: RecordID() = %q after SetRecordID", k, got)
		}
	}
}

func TestNewIDOrderedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
		if id <= prev {
			t.Fatalf("ids not monotonically increasing: %s after %s", id, prev)
		}
		prev = id
	}
}
