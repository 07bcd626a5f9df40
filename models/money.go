package models

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Money is a monetary amount in integer cents. Stored documents and API
// responses carry the display string form ("$12.99"); arithmetic stays in
// cents so repeated parse/format round trips cannot drift.
type Money int64

var moneyPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// MoneyFromCents returns a Money holding the given number of cents.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// MoneyFromFloat converts a dollar amount to Money, rounding to the cent.
func MoneyFromFloat(dollars float64) Money {
	return Money(math.Round(dollars * 100))
}

// ParseMoney extracts the first number found in free text ("$12.99",
// "12.99", "from 12.99 USD") and returns it as Money. Text with no number
// parses to $0.00.
func ParseMoney(s string) Money {
	match := moneyPattern.FindString(s)
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return MoneyFromFloat(f)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 { return int64(m) }

// Dollars returns the amount as floating-point dollars.
func (m Money) Dollars() float64 { return float64(m) / 100 }

// String formats the amount as a two-decimal dollar string.
func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}

// MarshalJSON emits the display string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON number (dollars) or a string
// containing a number anywhere in it.
func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = MoneyFromFloat(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = ParseMoney(s)
	return nil
}
