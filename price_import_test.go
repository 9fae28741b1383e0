package fundfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportPrices_WholeDocument(t *testing.T) {
	in := `{"HOY": 1.30, "ABC": 41.25}`

	prices, err := ImportPrices(strings.NewReader(in), "")
	require.NoError(t, err)

	hoy, ok := prices.Get("HOY")
	require.True(t, ok)
	assert.True(t, hoy.Equal(dec("1.3")))
	abc, ok := prices.Get("abc")
	require.True(t, ok, "lookup normalizes the instrument code")
	assert.True(t, abc.Equal(dec("41.25")))
}

func TestImportPrices_Path(t *testing.T) {
	in := `{"meta": {"asof": "2025-08-22"}, "quotes": {"HOY": 1.30}}`

	prices, err := ImportPrices(strings.NewReader(in), "$.quotes")
	require.NoError(t, err)
	require.Equal(t, []string{"HOY"}, prices.Instruments())
}

func TestImportPrices_LocaleStrings(t *testing.T) {
	// some exports quote prices as locale-formatted strings
	in := `{"HOY": "1,30", "ABC": "1 049,50"}`

	prices, err := ImportPrices(strings.NewReader(in), "")
	require.NoError(t, err)

	abc, _ := prices.Get("ABC")
	assert.True(t, abc.Equal(dec("1049.5")))
}

func TestImportPrices_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		path string
	}{
		{"not json", "hello", ""},
		{"not an object", `[1, 2, 3]`, ""},
		{"bad path", `{"quotes": {}}`, "$.["},
		{"path selects scalar", `{"quotes": 12}`, "$.quotes"},
		{"unparseable price", `{"HOY": "n/a"}`, ""},
		{"negative price", `{"HOY": -1}`, ""},
		{"boolean price", `{"HOY": true}`, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportPrices(strings.NewReader(tc.in), tc.path)
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecodePrices(t *testing.T) {
	prices := NewPriceMap()
	require.NoError(t, prices.Set("hoy", dec("1.30")))
	require.NoError(t, prices.Set("ABC", dec("41.25")))

	var b strings.Builder
	require.NoError(t, EncodePrices(&b, prices))

	decoded, err := DecodePrices(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, []string{"ABC", "HOY"}, decoded.Instruments())
	hoy, _ := decoded.Get("HOY")
	assert.True(t, hoy.Equal(dec("1.3")))
}

func TestPriceMap_Set(t *testing.T) {
	prices := NewPriceMap()
	assert.Error(t, prices.Set("  ", dec("1")), "blank instrument rejected")
	assert.Error(t, prices.Set("HOY", dec("-1")), "negative price rejected")
	assert.NoError(t, prices.Set("HOY", dec("0")), "a worthless instrument is still a priced one")
}
