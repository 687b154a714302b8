// Package calc builds any registered variant from command-line attributes
// and prints what its operations return.
package calc

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olehluchkiv/polydemo/internal/appliance"
	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/employee"
	"github.com/olehluchkiv/polydemo/internal/media"
	"github.com/olehluchkiv/polydemo/internal/numfmt"
	"github.com/olehluchkiv/polydemo/internal/payment"
	"github.com/olehluchkiv/polydemo/internal/rental"
	"github.com/olehluchkiv/polydemo/internal/shape"
)

// Family is one abstraction together with its closed set of variants.
type Family interface {
	Name() string
	Variants() []string
	Eval(variant string, args []string) ([]string, error)
}

type family[T any] struct {
	reg    *dispatch.Registry[T]
	render func(variant string, v T) []string
}

func (f family[T]) Name() string       { return f.reg.Family() }
func (f family[T]) Variants() []string { return f.reg.Names() }

func (f family[T]) Eval(variant string, args []string) ([]string, error) {
	v, err := f.reg.New(variant, args...)
	if err != nil {
		return nil, err
	}
	return f.render(variant, v), nil
}

// Families returns every family the calculator can evaluate.
func Families() []Family {
	return []Family{
		family[appliance.Appliance]{appliance.Registry(), func(_ string, a appliance.Appliance) []string {
			return []string{a.TurnOn()}
		}},
		family[shape.Shape]{shape.Registry(), func(name string, s shape.Shape) []string {
			return []string{"Area of " + cases.Title(language.English).String(name) + ": " + numfmt.Float(s.Area())}
		}},
		family[employee.Employee]{employee.Registry(), func(_ string, e employee.Employee) []string {
			return []string{e.Name() + " Bonus: " + numfmt.Float(e.Bonus())}
		}},
		family[rental.Rentable]{rental.Registry(), func(_ string, r rental.Rentable) []string {
			return r.Details()
		}},
		family[payment.Payment]{payment.Registry(), func(_ string, p payment.Payment) []string {
			return []string{p.MakePayment()}
		}},
		family[media.Printable]{media.Registry(), func(_ string, p media.Printable) []string {
			return p.PrintDetails()
		}},
	}
}

// Lookup finds a family by name.
func Lookup(name string) (Family, bool) {
	for _, f := range Families() {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Eval builds the variant of the named family from args and returns the lines
// its operations produce.
func Eval(familyName, variant string, args []string) ([]string, error) {
	f, ok := Lookup(familyName)
	if !ok {
		return nil, fmt.Errorf("family %q: %w", familyName, dispatch.ErrUnknownVariant)
	}
	return f.Eval(variant, args)
}
