package domain

import "testing"

func TestParseHourlyRate_Clamping(t *testing.T) {
	cases := []struct {
		euros, cents string
		wantE, wantC int
	}{
		{"10", "50", 10, 50},
		{"10", "150", 10, 99},
		{"-3", "-1", 0, 0},
		{"abc", "xyz", 0, 0},
		{"", "", 0, 0},
		{"0", "00", 0, 0},
	}
	for _, c := range cases {
		got := ParseHourlyRate(c.euros, c.cents)
		if got.Euros != c.wantE || got.Cents != c.wantC {
			t.Errorf("ParseHourlyRate(%q, %q) = %+v, want {%d %d}", c.euros, c.cents, got, c.wantE, c.wantC)
		}
	}
}

func TestHourlyRate_Effective(t *testing.T) {
	r := HourlyRate{Euros: 10, Cents: 50}
	if r.Effective() != 10.50 {
		t.Errorf("expected 10.50, got %v", r.Effective())
	}
	if (HourlyRate{}).Effective() != 0 {
		t.Error("zero rate must yield 0")
	}
}
