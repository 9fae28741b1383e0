package fundfolio

import "testing"

func TestDrawdowns(t *testing.T) {
	curve := []EquityPoint{
		{Date: day("2025-01-01"), Value: dec("100")},
		{Date: day("2025-01-02"), Value: dec("120")}, // new peak
		{Date: day("2025-01-03"), Value: dec("90")},  // -25% from 120
		{Date: day("2025-01-04"), Value: dec("120")}, // back at peak
		{Date: day("2025-01-05"), Value: dec("150")}, // new peak
	}

	dd := Drawdowns(curve)
	if len(dd) != len(curve) {
		t.Fatalf("got %d points, want %d (1:1 with the equity curve)", len(dd), len(curve))
	}

	wants := []Percent{0, 0, -25, 0, 0}
	for i, want := range wants {
		if dd[i].Date != curve[i].Date {
			t.Errorf("point %d date = %s, want %s", i, dd[i].Date, curve[i].Date)
		}
		if !dd[i].Decline.Equal(want) {
			t.Errorf("point %d decline = %v, want %v", i, dd[i].Decline, want)
		}
		if dd[i].Decline > 0 {
			t.Errorf("point %d decline = %v, drawdown must never be positive", i, dd[i].Decline)
		}
	}

	if got := MaxDrawdown(dd); !got.Equal(-25) {
		t.Errorf("MaxDrawdown = %v, want -25", got)
	}
}

func TestDrawdowns_Empty(t *testing.T) {
	if dd := Drawdowns(nil); dd != nil {
		t.Errorf("Drawdowns(nil) = %v, want nil", dd)
	}
	if got := MaxDrawdown(nil); got != 0 {
		t.Errorf("MaxDrawdown(nil) = %v, want 0", got)
	}
}

func TestDrawdowns_NonPositivePeak(t *testing.T) {
	// a zero-valued portfolio cannot have a meaningful relative decline
	curve := []EquityPoint{
		{Date: day("2025-01-01"), Value: dec("0")},
		{Date: day("2025-01-02"), Value: dec("0")},
	}
	for _, p := range Drawdowns(curve) {
		if p.Decline != 0 {
			t.Errorf("decline = %v, want 0 when peak is not positive", p.Decline)
		}
	}
}
