package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is a fixed-point monetary amount with two fraction digits. It always
// serializes to JSON as a quoted string like "10.00", matching the value a
// scanning client sees inside the QR payload.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "10.00".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.StringFixed(2))), nil
}

// UnmarshalJSON accepts both quoted ("10.00") and bare (10.0) numbers.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}
