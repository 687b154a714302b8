// Package vehicle shows multilevel inheritance: ElectricCar embeds Car,
// which embeds Vehicle, so the lowest level reaches every method above it.
package vehicle

type Vehicle struct{}

func (Vehicle) ShowVehicle() string { return "This is a vehicle" }

type Car struct {
	Vehicle
}

func (Car) ShowCar() string { return "This is a car" }

type ElectricCar struct {
	Car
}

func (ElectricCar) ShowElectricCar() string { return "This is an electric car" }
