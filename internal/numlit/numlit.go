// Package numlit interprets the digit text of numeric literals in radix 2, 10 and 16.
package numlit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingPoint is returned by ParseReal when the digits carry neither
// a decimal point nor an exponent marker.
var ErrMissingPoint = errors.New("missing decimal point")

// IntError reports malformed digits in an integer part or exponent.
type IntError struct {
	Digits string
	Radix  int
	Err    error // обычно *strconv.NumError
}

func (e *IntError) Error() string {
	return fmt.Sprintf("invalid digits %q for radix %d: %v", e.Digits, e.Radix, e.Err)
}

func (e *IntError) Unwrap() error { return e.Err }

// ParseInt parses digits (no prefix, optional sign) in the given radix.
func ParseInt(digits string, radix int) (int64, error) {
	v, err := strconv.ParseInt(digits, radix, 64)
	if err != nil {
		return 0, &IntError{Digits: digits, Radix: radix, Err: err}
	}
	return v, nil
}

// ParseReal parses a real literal body in the given radix.
//
// Accepted forms are "I.F" (value is the digits of I and F read as one integer
// divided by radix^len(F)) and, for radixes below 14 where 'e' is not a digit,
// "M[eE][+-]X" where M is an integer or dot form and X is a decimal exponent
// applied as radix^X.
func ParseReal(digits string, radix int) (float64, error) {
	if radix < 14 {
		if i := strings.IndexAny(digits, "eE"); i >= 0 {
			mant, exp := digits[:i], digits[i+1:]
			var m float64
			var err error
			if strings.Contains(mant, ".") {
				m, err = parseDotted(mant, radix)
			} else {
				m, err = mantissa(mant, radix)
			}
			if err != nil {
				return 0, err
			}
			x, err := strconv.Atoi(exp)
			if err != nil {
				return 0, &IntError{Digits: exp, Radix: 10, Err: err}
			}
			return m * math.Pow(float64(radix), float64(x)), nil
		}
	}
	if strings.Contains(digits, ".") {
		return parseDotted(digits, radix)
	}
	return 0, ErrMissingPoint
}

func parseDotted(digits string, radix int) (float64, error) {
	intPart, frac, _ := strings.Cut(digits, ".")
	m, err := mantissa(intPart+frac, radix)
	if err != nil {
		return 0, err
	}
	return m / math.Pow(float64(radix), float64(len(frac))), nil
}

// mantissa reads digits as an integer; values beyond int64 are accumulated in float64.
func mantissa(digits string, radix int) (float64, error) {
	v, err := ParseInt(digits, radix)
	if err == nil {
		return float64(v), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	var acc float64
	for _, r := range strings.TrimLeft(digits, "+") {
		d := digitValue(r)
		if d < 0 || d >= radix {
			return 0, &IntError{Digits: digits, Radix: radix, Err: strconv.ErrSyntax}
		}
		acc = acc*float64(radix) + float64(d)
	}
	return acc, nil
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

// Split strips a radix prefix: "0H" selects 16, "0B" selects 2 (case-insensitive).
// Any other text is decimal and returned unchanged.
func Split(text string) (digits string, radix int) {
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'h', 'H':
			return text[2:], 16
		case 'b', 'B':
			return text[2:], 2
		}
	}
	return text, 10
}

// Int parses a complete integer literal including its radix prefix.
func Int(text string) (int64, error) {
	digits, radix := Split(text)
	return ParseInt(digits, radix)
}

// Real parses a complete real literal including its radix prefix.
func Real(text string) (float64, error) {
	digits, radix := Split(text)
	return ParseReal(digits, radix)
}
