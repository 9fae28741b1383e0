package fundfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	original := NewLedger(
		NewBuy(day("2025-01-10"), "HOY", dec("100"), dec("1.00")),
		NewSell(day("2025-02-03"), "HOY", dec("20"), dec("1.20")),
		NewBuy(day("2025-02-03"), "ABC", dec("2.5"), dec("41.30")),
	)

	var b strings.Builder
	require.NoError(t, ExportCSV(&b, original))

	imported, accepted, err := ImportCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 3, accepted)
	require.Equal(t, original.Len(), imported.Len())

	want := slicesOf(original)
	got := slicesOf(imported)
	for i := range want {
		assert.True(t, want[i].Equal(got[i]),
			"transaction %d differs: %+v vs %+v", i, want[i], got[i])
	}
}

func slicesOf(l *Ledger) []Transaction {
	var out []Transaction
	for tx := range l.Transactions() {
		out = append(out, tx)
	}
	return out
}

func TestExportCSV_Format(t *testing.T) {
	ledger := NewLedger(
		NewSell(day("2025-02-03"), "HOY", dec("20"), dec("1.2")),
		NewBuy(day("2025-01-10"), "HOY", dec("100"), dec("1")),
	)

	var b strings.Builder
	require.NoError(t, ExportCSV(&b, ledger))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,instrument,kind,units,price", lines[0])
	// rows sorted ascending by date, fixed decimal form
	assert.Equal(t, "2025-01-10,HOY,BUY,100,1", lines[1])
	assert.Equal(t, "2025-02-03,HOY,SELL,20,1.2", lines[2])
}

func TestImportCSV_Semicolon(t *testing.T) {
	in := "date;instrument;kind;units;price\n" +
		"2025-01-10;hoy;buy;100,5;1,25\n"

	ledger, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, accepted)

	tx := slicesOf(ledger)[0]
	assert.Equal(t, "HOY", tx.Instrument)
	assert.Equal(t, Buy, tx.Kind)
	assert.True(t, tx.Units.Equal(dec("100.5")))
	assert.True(t, tx.Price.Equal(dec("1.25")))
}

func TestImportCSV_KindMapping(t *testing.T) {
	in := "2025-01-10,HOY,Verkauf SELL,10,1\n" +
		"2025-01-11,HOY,sale,10,1\n" +
		"2025-01-12,HOY,s,10,1\n" +
		"2025-01-13,HOY,anything-else,10,1\n"

	ledger, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, accepted)

	txs := slicesOf(ledger)
	assert.Equal(t, Sell, txs[0].Kind)
	assert.Equal(t, Sell, txs[1].Kind)
	assert.Equal(t, Sell, txs[2].Kind)
	assert.Equal(t, Buy, txs[3].Kind, "unknown kind tokens default to BUY")
}

func TestImportCSV_DiscardsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"date,instrument,kind,units,price",
		"2025-01-10,HOY,buy,100,1.00",  // good
		",HOY,buy,10,1.00",             // empty date
		"2025-01-11,,buy,10,1.00",      // empty instrument
		"2025-01-12,HOY,buy,abc,1.00",  // invalid units
		"2025-01-13,HOY,buy,10,",       // invalid price
		"2025-01-14,HOY,buy,10",        // too few fields
		"2025-01-15,HOY,sell,5,2.00",   // good
	}, "\n")

	ledger, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err, "bad rows are discarded, never fatal")
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 2, ledger.Len())
}

func TestImportCSV_TruncatesDate(t *testing.T) {
	in := "2025-01-10T15:04:05,HOY,buy,10,1.00\n"

	ledger, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, accepted)
	assert.Equal(t, day("2025-01-10"), slicesOf(ledger)[0].Date)
}

func TestImportCSV_HeaderlessInput(t *testing.T) {
	// first line is data: it must not be eaten by the header heuristic
	in := "2025-01-10,HOY,buy,10,1.00\n"

	_, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)
}

func TestImportCSV_ExtraColumnsTolerated(t *testing.T) {
	// foreign exports may carry trailing columns; the first five count
	in := "2025-01-10,HOY,buy,10,1.00,broker-x,whatever\n"

	ledger, accepted, err := ImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, accepted)
	assert.True(t, slicesOf(ledger)[0].Price.Equal(dec("1")))
}
