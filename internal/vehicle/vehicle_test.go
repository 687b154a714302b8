package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElectricCarReachesEveryLevel(t *testing.T) {
	ec := ElectricCar{}
	assert.Equal(t, "This is a vehicle", ec.ShowVehicle())
	assert.Equal(t, "This is a car", ec.ShowCar())
	assert.Equal(t, "This is an electric car", ec.ShowElectricCar())

	assert.Equal(t, ec.Car.Vehicle.ShowVehicle(), ec.ShowVehicle())
	assert.Equal(t, ec.Car.ShowCar(), ec.ShowCar())
}
