package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/polydemo/internal/dispatch"
)

func TestRentIsDaysTimesRate(t *testing.T) {
	for days := 0; days <= 30; days++ {
		var c Rentable = NewCar("Honda City", days)
		var b Rentable = NewBike("Royal Enfield", days)
		assert.Equal(t, float64(days)*CarRatePerDay, c.CalculateRent())
		assert.Equal(t, float64(days)*BikeRatePerDay, b.CalculateRent())
	}
}

func TestRatePerDayDrivesRent(t *testing.T) {
	c := NewCar("Honda City", 4)
	b := NewBike("Royal Enfield", 4)
	assert.Equal(t, CarRatePerDay, c.RatePerDay())
	assert.Equal(t, BikeRatePerDay, b.RatePerDay())
	assert.Equal(t, 4*c.RatePerDay(), c.CalculateRent())
	assert.Equal(t, 4*b.RatePerDay(), b.CalculateRent())
}

func TestCarThreeDays(t *testing.T) {
	c := NewCar("Honda City", 3)
	assert.Equal(t, 4500.0, c.CalculateRent())
	assert.Equal(t, []string{
		"Car Model: Honda City",
		"Days Rented: 3",
		"Total Rent: 4500",
		"",
	}, c.Details())
}

func TestRentalsThroughSlice(t *testing.T) {
	rentals := []Rentable{NewCar("Honda City", 3), NewBike("Royal Enfield", 2)}

	var lines []string
	for _, r := range rentals {
		lines = append(lines, r.Details()...)
	}
	assert.Equal(t, []string{
		"Car Model: Honda City",
		"Days Rented: 3",
		"Total Rent: 4500",
		"",
		"Bike Model: Royal Enfield",
		"Days Rented: 2",
		"Total Rent: 1000",
		"",
	}, lines)
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	assert.Equal(t, []string{"car", "bike"}, reg.Names())

	r, err := reg.New("bike", "Royal Enfield", "2")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, r.CalculateRent())

	_, err = reg.New("car", "Honda City", "3.5")
	require.ErrorIs(t, err, dispatch.ErrInputFormat)
}
