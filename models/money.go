// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidMoney is returned when a value cannot be read as an amount with
// at most two fraction digits.
var ErrInvalidMoney = errors.New("invalid money amount")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64 + 1)
)

// Money is a currency amount in minor units (cents).
//
// In JSON it is written as a decimal string with two fraction digits
// ("1000.00") and read from either a string or a number.
type Money int64

// ParseMoney parses a decimal amount such as "1000", "12.5" or "-3.05".
// Exponent notation and a trailing dot are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMoney)
	}
	if strings.ContainsAny(s, "eE") || strings.HasSuffix(s, ".") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("%w: %q needs one or two fraction digits", ErrInvalidMoney, s)
	}

	cents := d.Shift(2)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidMoney, s)
	}

	return Money(cents.IntPart()), nil
}

// FromUnits converts whole currency units to Money.
func FromUnits(units int64) Money {
	return Money(units * 100)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String formats the amount with exactly two fraction digits.
func (m Money) String() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMoney, err)
		}
		raw = unquoted
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
