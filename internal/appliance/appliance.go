// Package appliance shows abstraction: callers switch devices on through
// the Appliance interface without knowing which device they hold.
package appliance

import "github.com/olehluchkiv/polydemo/internal/dispatch"

// Appliance is anything that can be turned on. Every variant supplies its
// own TurnOn; there is no default.
type Appliance interface {
	TurnOn() string
}

type Fan struct{}

func (Fan) TurnOn() string { return "Fan is turned ON" }

type Light struct{}

func (Light) TurnOn() string { return "Light is turned ON" }

// Registry returns the closed set of appliance variants.
func Registry() *dispatch.Registry[Appliance] {
	return dispatch.NewRegistry[Appliance]("appliance").
		MustRegister("fan", noArgs(Fan{})).
		MustRegister("light", noArgs(Light{}))
}

func noArgs(a Appliance) dispatch.Constructor[Appliance] {
	return func(args []string) (Appliance, error) {
		if err := dispatch.Arity("appliance", args); err != nil {
			return nil, err
		}
		return a, nil
	}
}
