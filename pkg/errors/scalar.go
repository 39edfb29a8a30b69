package errors

import (
	"math"
	"strconv"
	"strings"
)

// ParsePositive parses raw user input as a number strictly greater than zero.
//
// The checks run in a fixed order so each rejection maps to one code:
//   - empty or whitespace-only input: ErrCodeEmptyValue
//   - input that is not a finite decimal number: ErrCodeNotANumber
//   - zero or negative values: ErrCodeTooSmall
func ParsePositive(name, raw string) (float64, error) {
	v, err := parseNumber(name, raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, New(ErrCodeTooSmall, "%s is too small, it should be > 0", name)
	}
	return v, nil
}

// ParseUnit parses raw user input as a number in the closed interval [0, 1].
// Values outside the interval are rejected with ErrCodeOutOfRange.
func ParseUnit(name, raw string) (float64, error) {
	v, err := parseNumber(name, raw)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, New(ErrCodeOutOfRange, "%s must be between 0 and 1, got %v", name, v)
	}
	return v, nil
}

// RequireValue rejects empty input with ErrCodeEmptyValue.
func RequireValue(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return New(ErrCodeEmptyValue, "%s is empty", name)
	}
	return nil
}

func parseNumber(name, raw string) (float64, error) {
	if err := RequireValue(name, raw); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	// NaN and the infinities parse without error but poison every coordinate.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, New(ErrCodeNotANumber, "%s is not a number: %q", name, raw)
	}
	return v, nil
}
