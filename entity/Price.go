package entity

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Price is a money amount the way the backend sends it: sometimes a JSON
// number, sometimes a numeric string. Anything missing or unparsable reads
// as zero so cart arithmetic never works on garbage.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price { return Price{Decimal: d} }

// PriceFromString parses s, falling back to zero on bad input.
func PriceFromString(s string) Price {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}
	}
	return Price{Decimal: d}
}

func PriceFromFloat(f float64) Price { return Price{Decimal: decimal.NewFromFloat(f)} }

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		p.Decimal = decimal.Decimal{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			p.Decimal = decimal.Decimal{}
			return nil
		}
		*p = PriceFromString(s)
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		p.Decimal = decimal.Decimal{}
		return nil
	}
	p.Decimal = d
	return nil
}

// MarshalJSON emits a plain JSON number with two decimals. price_change is
// the one field the backend expects as text; see SingleChoice/MultipleChoice.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(2)), nil
}

func (p Price) Add(q Price) Price { return Price{Decimal: p.Decimal.Add(q.Decimal)} }

func (p Price) MulInt(n int) Price {
	return Price{Decimal: p.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

func (p Price) Equal(q Price) bool { return p.Decimal.Equal(q.Decimal) }

func (p Price) IsZero() bool { return p.Decimal.IsZero() }
