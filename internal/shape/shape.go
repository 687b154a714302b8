// Package shape demonstrates overriding a default: Base reports zero area
// and each concrete shape replaces it with its own formula.
package shape

import "github.com/olehluchkiv/polydemo/internal/dispatch"

// Pi is the approximation the area formulas use.
const Pi = 3.14

type Shape interface {
	Area() float64
}

// Base is a shape with no dimensions. Its Area is the default.
type Base struct{}

func (Base) Area() float64 { return 0 }

type Circle struct {
	Base
	Radius float64
}

func NewCircle(r float64) Circle { return Circle{Radius: r} }

// Area overrides Base.Area.
func (c Circle) Area() float64 { return Pi * c.Radius * c.Radius }

type Rectangle struct {
	Base
	Length  float64
	Breadth float64
}

func NewRectangle(l, b float64) Rectangle { return Rectangle{Length: l, Breadth: b} }

// Area overrides Base.Area.
func (r Rectangle) Area() float64 { return r.Length * r.Breadth }

// Registry returns the closed set of shapes. Dimensions come in as text.
func Registry() *dispatch.Registry[Shape] {
	return dispatch.NewRegistry[Shape]("shape").
		MustRegister("shape", func(args []string) (Shape, error) {
			if err := dispatch.Arity("shape", args); err != nil {
				return nil, err
			}
			return Base{}, nil
		}).
		MustRegister("circle", func(args []string) (Shape, error) {
			if err := dispatch.Arity("circle", args, "radius"); err != nil {
				return nil, err
			}
			r, err := dispatch.ParseFloat("radius", args[0])
			if err != nil {
				return nil, err
			}
			return NewCircle(r), nil
		}).
		MustRegister("rectangle", func(args []string) (Shape, error) {
			if err := dispatch.Arity("rectangle", args, "length", "breadth"); err != nil {
				return nil, err
			}
			l, err := dispatch.ParseFloat("length", args[0])
			if err != nil {
				return nil, err
			}
			b, err := dispatch.ParseFloat("breadth", args[1])
			if err != nil {
				return nil, err
			}
			return NewRectangle(l, b), nil
		})
}
