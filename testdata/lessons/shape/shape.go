package shape

import "fmt"

type Shape interface {
	Area() float64
}

type Base struct{}

func (Base) Area() float64 { return 0 }

type Circle struct {
	Base
	Radius float64
}

func (c Circle) Area() float64 { return 3.14 * c.Radius * c.Radius }

func (c Circle) String() string { return fmt.Sprintf("circle(%v)", c.Radius) }
