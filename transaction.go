package fundfolio

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Kind identifies the direction of a transaction.
type Kind string

const (
	// Buy adds units to a position at a cost.
	Buy Kind = "BUY"
	// Sell removes units from a position and realizes a gain or loss.
	Sell Kind = "SELL"
)

// ParseKind maps a free-form token to a Kind. Any token containing a sale
// marker (case-insensitive) is a Sell; everything else is a Buy, which keeps
// hand-entered and exported data importable.
func ParseKind(token string) Kind {
	t := strings.ToLower(strings.TrimSpace(token))
	if strings.Contains(t, "sell") || strings.Contains(t, "sale") || t == "s" {
		return Sell
	}
	return Buy
}

// Transaction is a single buy or sell record in the ledger. It is immutable
// once created: corrections happen by replacing the record, never by editing
// it in place.
type Transaction struct {
	ID         string          `json:"id"`
	Date       Date            `json:"date"`
	Instrument string          `json:"instrument"`
	Kind       Kind            `json:"kind"`
	Units      decimal.Decimal `json:"units"`
	Price      decimal.Decimal `json:"price"`
}

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// newID returns a fresh ULID. Monotonic entropy keeps IDs generated within
// the same millisecond strictly increasing.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), idEntropy).String()
}

// NewTransaction creates a transaction with a fresh ID and a normalized
// instrument code. The record is not validated; see Validate.
func NewTransaction(day Date, instrument string, kind Kind, units, price decimal.Decimal) Transaction {
	return Transaction{
		ID:         newID(),
		Date:       day,
		Instrument: NormalizeInstrument(instrument),
		Kind:       kind,
		Units:      units,
		Price:      price,
	}
}

// NewBuy creates a validated-shape buy record.
func NewBuy(day Date, instrument string, units, price decimal.Decimal) Transaction {
	return NewTransaction(day, instrument, Buy, units, price)
}

// NewSell creates a validated-shape sell record.
func NewSell(day Date, instrument string, units, price decimal.Decimal) Transaction {
	return NewTransaction(day, instrument, Sell, units, price)
}

// Validate checks the transaction's fields: non-empty instrument, a set date,
// strictly positive units and a non-negative price.
func (t Transaction) Validate() error {
	if t.Instrument == "" {
		return fmt.Errorf("transaction instrument is missing")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is missing")
	}
	if t.Kind != Buy && t.Kind != Sell {
		return fmt.Errorf("transaction kind %q is not %s or %s", t.Kind, Buy, Sell)
	}
	if !t.Units.IsPositive() {
		return fmt.Errorf("transaction units must be positive, got %s", t.Units)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price must not be negative, got %s", t.Price)
	}
	return nil
}

// Equal compares two transactions by content, ignoring the ID.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Instrument == o.Instrument &&
		t.Kind == o.Kind &&
		t.Units.Equal(o.Units) &&
		t.Price.Equal(o.Price)
}

// Cost returns units times price.
func (t Transaction) Cost() decimal.Decimal { return t.Units.Mul(t.Price) }

// NormalizeInstrument canonicalizes an instrument code: surrounding
// whitespace trimmed, upper-cased, internal whitespace stripped.
func NormalizeInstrument(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
