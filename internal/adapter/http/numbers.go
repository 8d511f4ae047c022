package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNotInteger = errors.New("not an integer")

	maxInt = decimal.NewFromInt(math.MaxInt32)
	minInt = decimal.NewFromInt(math.MinInt32)
)

// flexNumber accepts a JSON number or a numeric string ("20000000").
type flexNumber string

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = flexNumber(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = flexNumber(num)
	return nil
}

// UnmarshalParam lets echo bind the same field from a form.
func (n *flexNumber) UnmarshalParam(s string) error {
	*n = flexNumber(strings.TrimSpace(s))
	return nil
}

func (n flexNumber) Set() bool { return n != "" }

// Decimal returns zero for an empty value.
func (n flexNumber) Decimal() (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(n))
}

func (n flexNumber) Int() (int, error) {
	d, err := n.Decimal()
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.GreaterThan(maxInt) || d.LessThan(minInt) {
		return 0, errNotInteger
	}
	return int(d.IntPart()), nil
}
