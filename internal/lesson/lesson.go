// Package lesson holds the runnable examples. Each lesson builds a few
// variants, holds them through their abstraction and prints what they do.
package lesson

import (
	"github.com/olehluchkiv/polydemo/internal/animal"
	"github.com/olehluchkiv/polydemo/internal/appliance"
	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/employee"
	"github.com/olehluchkiv/polydemo/internal/media"
	"github.com/olehluchkiv/polydemo/internal/numfmt"
	"github.com/olehluchkiv/polydemo/internal/payment"
	"github.com/olehluchkiv/polydemo/internal/rental"
	"github.com/olehluchkiv/polydemo/internal/robot"
	"github.com/olehluchkiv/polydemo/internal/shape"
	"github.com/olehluchkiv/polydemo/internal/vehicle"
)

// Default is the lesson run when none is named.
const Default = "abstraction"

type Lesson interface {
	Name() string
	Concept() string
	Run(c *Console) error
}

type lesson struct {
	name    string
	concept string
	run     func(c *Console)
}

func (l lesson) Name() string    { return l.name }
func (l lesson) Concept() string { return l.concept }

func (l lesson) Run(c *Console) error {
	l.run(c)
	return c.Err()
}

// Catalog returns every lesson in presentation order.
func Catalog() *dispatch.Registry[Lesson] {
	reg := dispatch.NewRegistry[Lesson]("lesson")
	for _, l := range []lesson{
		{"inheritance", "A child type reuses its parent's behavior by embedding it.", inheritance},
		{"multilevel", "The lowest type in an embedding chain reaches every level above it.", multilevel},
		{"polymorphism", "A Shape value runs the Area of whatever shape it holds.", polymorphism},
		{"abstraction", "Callers switch appliances on through the Appliance interface.", abstraction},
		{"interface", "Unrelated types print themselves through one Printable contract.", printable},
		{"multiple-interfaces", "One type satisfies two independent interfaces.", multipleInterfaces},
		{"payment", "The payment method is picked at run time; the call site stays the same.", checkout},
		{"bonus", "Each role computes its own bonus behind the Employee interface.", bonus},
		{"rental", "Vehicles in one slice of Rentable price themselves.", rentals},
	} {
		reg.MustRegister(l.name, fixed(l))
	}
	return reg
}

func fixed(l lesson) dispatch.Constructor[Lesson] {
	return func(args []string) (Lesson, error) {
		if err := dispatch.Arity(l.name, args); err != nil {
			return nil, err
		}
		return l, nil
	}
}

func inheritance(c *Console) {
	d := animal.Dog{}
	c.Println(d.Eat(), d.Bark())
}

func multilevel(c *Console) {
	ec := vehicle.ElectricCar{}
	c.Println(ec.ShowVehicle(), ec.ShowCar(), ec.ShowElectricCar())
}

func polymorphism(c *Console) {
	var s1 shape.Shape = shape.NewCircle(5)
	var s2 shape.Shape = shape.NewRectangle(4, 6)
	c.Println(
		"Area of Circle: "+numfmt.Float(s1.Area()),
		"Area of Rectangle: "+numfmt.Float(s2.Area()),
	)
}

func abstraction(c *Console) {
	var a1 appliance.Appliance = appliance.Fan{}
	var a2 appliance.Appliance = appliance.Light{}
	c.Println(a1.TurnOn(), a2.TurnOn())
}

func printable(c *Console) {
	var p1 media.Printable = media.Book{Title: "C# Basics", Author: "Abc"}
	var p2 media.Printable = media.Magazine{Name: "Tech World", IssueNumber: 25}
	c.Println(p1.PrintDetails()...)
	c.Println("")
	c.Println(p2.PrintDetails()...)
}

func multipleInterfaces(c *Console) {
	r := robot.Robot{}
	var m robot.Mover = r
	var s robot.SoundMaker = r
	c.Println(m.Move(), s.MakeSound())
}

func checkout(c *Console) {
	amount := c.Prompt("Enter payment amount: ")
	if _, err := payment.ParseAmount(amount); err != nil {
		c.Println("Error: " + err.Error())
		return
	}
	p, err := payment.New(c.Prompt("Choose Payment Method (1-Credit Card, 2-UPI): "), amount)
	if err != nil {
		c.Println("Error: " + err.Error())
		return
	}
	c.Println(p.MakePayment())
}

func bonus(c *Console) {
	var e1 employee.Employee = employee.NewManager("Abc", 50000)
	var e2 employee.Employee = employee.NewDeveloper("Xyz", 40000)
	c.Println(
		e1.Name()+" Bonus: "+numfmt.Float(e1.Bonus()),
		e2.Name()+" Bonus: "+numfmt.Float(e2.Bonus()),
	)
}

func rentals(c *Console) {
	var list []rental.Rentable
	list = append(list, rental.NewCar("Honda City", 3))
	list = append(list, rental.NewBike("Royal Enfield", 2))
	for _, r := range list {
		c.Println(r.Details()...)
	}
}
