package appliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/polydemo/internal/dispatch"
)

func TestTurnOn(t *testing.T) {
	var a Appliance = Fan{}
	assert.Equal(t, "Fan is turned ON", a.TurnOn())
	assert.Equal(t, Fan{}.TurnOn(), a.TurnOn())

	a = Light{}
	assert.Equal(t, "Light is turned ON", a.TurnOn())
	assert.Equal(t, Light{}.TurnOn(), a.TurnOn())
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	assert.Equal(t, []string{"fan", "light"}, reg.Names())

	a, err := reg.New("light")
	require.NoError(t, err)
	assert.Equal(t, "Light is turned ON", a.TurnOn())

	_, err = reg.New("fan", "extra")
	require.ErrorIs(t, err, dispatch.ErrInputFormat)

	_, err = reg.New("toaster")
	require.ErrorIs(t, err, dispatch.ErrUnknownVariant)
}
