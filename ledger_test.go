package fundfolio

import (
	"testing"
)

func TestLedger_StableSort(t *testing.T) {
	// same-date transactions keep insertion order
	a := NewBuy(day("2025-01-10"), "HOY", dec("1"), dec("1"))
	b := NewSell(day("2025-01-10"), "HOY", dec("2"), dec("1"))
	c := NewBuy(day("2025-01-05"), "HOY", dec("3"), dec("1"))

	ledger := NewLedger(a, b)
	ledger.Append(c)

	var got []Transaction
	for tx := range ledger.Transactions() {
		got = append(got, tx)
	}
	if got[0].ID != c.ID || got[1].ID != a.ID || got[2].ID != b.ID {
		t.Errorf("order = %s %s %s, want c a b", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestLedger_Dates(t *testing.T) {
	ledger := NewLedger(
		NewBuy(day("2025-01-10"), "HOY", dec("1"), dec("1")),
		NewBuy(day("2025-01-10"), "ABC", dec("1"), dec("1")),
		NewBuy(day("2025-02-01"), "HOY", dec("1"), dec("1")),
	)

	dates := ledger.Dates()
	if len(dates) != 2 {
		t.Fatalf("got %d dates, want 2 distinct", len(dates))
	}
	if dates[0] != day("2025-01-10") || dates[1] != day("2025-02-01") {
		t.Errorf("dates = %v", dates)
	}
}

func TestLedger_Instruments(t *testing.T) {
	ledger := NewLedger(
		NewBuy(day("2025-01-10"), "hoy", dec("1"), dec("1")),
		NewBuy(day("2025-01-11"), "ABC", dec("1"), dec("1")),
		NewBuy(day("2025-01-12"), "HOY", dec("1"), dec("1")),
	)

	got := ledger.Instruments()
	if len(got) != 2 || got[0] != "ABC" || got[1] != "HOY" {
		t.Errorf("Instruments() = %v, want [ABC HOY]", got)
	}
}

func TestLedger_Delete(t *testing.T) {
	tx := NewBuy(day("2025-01-10"), "HOY", dec("1"), dec("1"))
	ledger := NewLedger(tx)

	if !ledger.Delete(tx.ID) {
		t.Fatal("Delete returned false for an existing transaction")
	}
	if ledger.Len() != 0 {
		t.Errorf("Len = %d after delete, want 0", ledger.Len())
	}
	if ledger.Delete(tx.ID) {
		t.Error("Delete returned true for a missing transaction")
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := NewBuy(day("2025-01-10"), "HOY", dec("1"), dec("1"))
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"empty instrument", func(tx *Transaction) { tx.Instrument = "" }},
		{"zero date", func(tx *Transaction) { tx.Date = Date{} }},
		{"zero units", func(tx *Transaction) { tx.Units = dec("0") }},
		{"negative units", func(tx *Transaction) { tx.Units = dec("-1") }},
		{"negative price", func(tx *Transaction) { tx.Price = dec("-1") }},
		{"bad kind", func(tx *Transaction) { tx.Kind = "HOLD" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// a free instrument (price 0) is fine: price must only be non-negative
	free := NewBuy(day("2025-01-10"), "HOY", dec("1"), dec("0"))
	if err := free.Validate(); err != nil {
		t.Errorf("zero price rejected: %v", err)
	}
}

func TestNormalizeInstrument(t *testing.T) {
	testCases := []struct{ in, want string }{
		{" hoy ", "HOY"},
		{"ho y", "HOY"},
		{"\tA b\nC ", "ABC"},
		{"HOY", "HOY"},
		{"   ", ""},
	}
	for _, tc := range testCases {
		if got := NormalizeInstrument(tc.in); got != tc.want {
			t.Errorf("NormalizeInstrument(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := newID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
