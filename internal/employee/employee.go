// Package employee computes bonuses through a common Employee abstraction.
// Name and salary live on the embedded base; each role supplies Bonus.
package employee

import "github.com/olehluchkiv/polydemo/internal/dispatch"

const (
	ManagerBonusRate   = 0.20
	DeveloperBonusRate = 0.10
)

type Employee interface {
	Name() string
	Salary() float64
	Bonus() float64
}

// staff holds the fields every role shares.
type staff struct {
	name   string
	salary float64
}

func (s staff) Name() string { return s.name }
func (s staff) Salary() float64 { return s.salary }

type Manager struct{ staff }

func NewManager(name string, salary float64) Manager {
	return Manager{staff{name: name, salary: salary}}
}

// Bonus is 20% of salary.
func (m Manager) Bonus() float64 { return m.salary * ManagerBonusRate }

type Developer struct{ staff }

func NewDeveloper(name string, salary float64) Developer {
	return Developer{staff{name: name, salary: salary}}
}

// Bonus is 10% of salary.
func (d Developer) Bonus() float64 { return d.salary * DeveloperBonusRate }

// Registry returns the closed set of roles, built from "<name> <salary>".
func Registry() *dispatch.Registry[Employee] {
	return dispatch.NewRegistry[Employee]("employee").
		MustRegister("manager", build(func(n string, s float64) Employee { return NewManager(n, s) })).
		MustRegister("developer", build(func(n string, s float64) Employee { return NewDeveloper(n, s) }))
}

func build(mk func(string, float64) Employee) dispatch.Constructor[Employee] {
	return func(args []string) (Employee, error) {
		if err := dispatch.Arity("employee", args, "name", "salary"); err != nil {
			return nil, err
		}
		salary, err := dispatch.ParseFloat("salary", args[1])
		if err != nil {
			return nil, err
		}
		return mk(args[0], salary), nil
	}
}
