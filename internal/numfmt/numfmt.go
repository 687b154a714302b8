// Package numfmt renders computed values the way the lessons print them:
// at most 15 significant digits with trailing zeros dropped, so 3.14*5*5
// prints as 78.5 and 1500*3 as 4500. Values of 1e15 and above, or below
// 1e-4, switch to exponent form such as 3.14E+20 or 1E-05.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	significantDigits = 15
	minPlainExponent  = -4
)

// Float formats v with at most 15 significant digits and no trailing zeros.
func Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		return "0"
	}

	// d.dddddddddddddde±x, rounded to 15 significant digits.
	mant, expText, _ := strings.Cut(strconv.FormatFloat(v, 'e', significantDigits-1, 64), "e")
	exp, err := strconv.Atoi(expText)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	if exp < minPlainExponent || exp >= significantDigits {
		mant = strings.TrimSuffix(strings.TrimRight(mant, "0"), ".")
		sign := "+"
		if exp < 0 {
			sign, exp = "-", -exp
		}
		return fmt.Sprintf("%sE%s%02d", mant, sign, exp)
	}

	d, err := decimal.NewFromString(mant + "e" + expText)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return d.String()
}

// Int formats an integer attribute.
func Int(v int) string {
	return strconv.Itoa(v)
}
