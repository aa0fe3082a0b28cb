package domain

import "strconv"

// HourlyRate is a euros-and-cents wage rate. The two parts are entered and
// validated independently: cents are clamped to [0,99], euros to >= 0, and
// anything non-numeric collapses to zero.
type HourlyRate struct {
	Euros int `json:"euros"`
	Cents int `json:"cents"`
}

// ParseHourlyRate builds an HourlyRate from raw string inputs, applying the
// clamping rules above. It never fails: bad input yields a zero part.
func ParseHourlyRate(euros, cents string) HourlyRate {
	e, err := strconv.Atoi(euros)
	if err != nil || e < 0 {
		e = 0
	}
	c, err := strconv.Atoi(cents)
	if err != nil || c < 0 {
		c = 0
	}
	if c > 99 {
		c = 99
	}
	return HourlyRate{Euros: e, Cents: c}
}

// Effective returns the rate as a decimal euro amount per hour.
func (r HourlyRate) Effective() float64 {
	return float64(r.Euros) + float64(r.Cents)/100
}
