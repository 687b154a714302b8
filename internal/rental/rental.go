// Package rental prices rentable vehicles through a shared Rentable
// interface. Each vehicle kind carries its own daily rate.
package rental

import (
	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/numfmt"
)

const (
	CarRatePerDay  = 1500.0
	BikeRatePerDay = 500.0
)

type Rentable interface {
	CalculateRent() float64
	Details() []string
}

// booking is the model and rental length every vehicle kind records.
type booking struct {
	Model string
	Days  int
}

func (b booking) details(kind string, rent float64) []string {
	return []string{
		kind + " Model: " + b.Model,
		"Days Rented: " + numfmt.Int(b.Days),
		"Total Rent: " + numfmt.Float(rent),
		"",
	}
}

type Car struct{ booking }

func NewCar(model string, days int) Car { return Car{booking{Model: model, Days: days}} }

func (c Car) RatePerDay() float64 { return CarRatePerDay }

func (c Car) CalculateRent() float64 { return float64(c.Days) * c.RatePerDay() }

func (c Car) Details() []string { return c.details("Car", c.CalculateRent()) }

type Bike struct{ booking }

func NewBike(model string, days int) Bike { return Bike{booking{Model: model, Days: days}} }

func (b Bike) RatePerDay() float64 { return BikeRatePerDay }

func (b Bike) CalculateRent() float64 { return float64(b.Days) * b.RatePerDay() }

func (b Bike) Details() []string { return b.details("Bike", b.CalculateRent()) }

// Registry returns the closed set of vehicle kinds, built from
// "<model> <days>".
func Registry() *dispatch.Registry[Rentable] {
	return dispatch.NewRegistry[Rentable]("rental").
		MustRegister("car", build(func(m string, d int) Rentable { return NewCar(m, d) })).
		MustRegister("bike", build(func(m string, d int) Rentable { return NewBike(m, d) }))
}

func build(mk func(string, int) Rentable) dispatch.Constructor[Rentable] {
	return func(args []string) (Rentable, error) {
		if err := dispatch.Arity("rental", args, "model", "days"); err != nil {
			return nil, err
		}
		days, err := dispatch.ParseInt("days", args[1])
		if err != nil {
			return nil, err
		}
		return mk(args[0], days), nil
	}
}
