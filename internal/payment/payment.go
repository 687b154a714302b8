// Package payment models a payment abstraction with one variant per method.
// The method is chosen at run time from a numeric menu selector.
package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/numfmt"
)

const (
	SelectorCreditCard = "1"
	SelectorUPI        = "2"
)

// Amounts are held as decimals but must fit a float64, like the console
// menu that reads them. These bound the decimal magnitude (exponent plus
// coefficient digits) before any float conversion is attempted.
const (
	maxMagnitude = 309
	minMagnitude = -324
)

type Payment interface {
	Amount() decimal.Decimal
	MakePayment() string
}

type CreditCard struct {
	amount decimal.Decimal
}

func NewCreditCard(amount decimal.Decimal) CreditCard { return CreditCard{amount: amount} }

func (c CreditCard) Amount() decimal.Decimal { return c.amount }

func (c CreditCard) MakePayment() string {
	return fmt.Sprintf("Payment of %s made using Credit Card.", formatAmount(c.amount))
}

type UPI struct {
	amount decimal.Decimal
}

func NewUPI(amount decimal.Decimal) UPI { return UPI{amount: amount} }

func (u UPI) Amount() decimal.Decimal { return u.amount }

func (u UPI) MakePayment() string {
	return fmt.Sprintf("Payment of %s made using UPI.", formatAmount(u.amount))
}

func formatAmount(d decimal.Decimal) string {
	return numfmt.Float(d.InexactFloat64())
}

// ParseAmount reads a free-form amount such as "100.0" or "2.5e3". Amounts
// beyond the float64 range are rejected; amounts below it read as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &dispatch.InputError{Field: "amount", Input: s}
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	coef := d.Coefficient()
	magnitude := int64(d.Exponent()) + int64(len(coef.Abs(coef).String()))
	switch {
	case magnitude > maxMagnitude:
		return decimal.Zero, &dispatch.InputError{Field: "amount", Input: s, Err: strconv.ErrRange}
	case magnitude < minMagnitude:
		return decimal.Zero, nil
	}
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, &dispatch.InputError{Field: "amount", Input: s, Err: strconv.ErrRange}
	}
	return d, nil
}

// New builds the payment method chosen by a menu selector. The selector is
// read as an integer, so "01" and "+1" both pick credit card.
func New(selector, amount string) (Payment, error) {
	return Registry().New(selector, amount)
}

func canonicalSelector(selector string) (string, error) {
	n, err := dispatch.ParseInt("payment method", selector)
	if err != nil {
		return "", err
	}
	return numfmt.Int(n), nil
}

// Registry maps menu selectors to payment methods. Selector 1 is credit
// card; any other integer falls back to UPI and a non-integer is an input
// error.
func Registry() *dispatch.Registry[Payment] {
	reg := dispatch.NewRegistry[Payment]("payment").
		MustRegister(SelectorCreditCard, build(func(a decimal.Decimal) Payment { return NewCreditCard(a) })).
		MustRegister(SelectorUPI, build(func(a decimal.Decimal) Payment { return NewUPI(a) })).
		Canonical(canonicalSelector)
	if err := reg.Fallback(SelectorUPI); err != nil {
		panic(err)
	}
	return reg
}

func build(mk func(decimal.Decimal) Payment) dispatch.Constructor[Payment] {
	return func(args []string) (Payment, error) {
		if err := dispatch.Arity("payment", args, "amount"); err != nil {
			return nil, err
		}
		amount, err := ParseAmount(args[0])
		if err != nil {
			return nil, err
		}
		return mk(amount), nil
	}
}
