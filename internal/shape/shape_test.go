package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/polydemo/internal/dispatch"
)

func TestDefaultAreaIsZero(t *testing.T) {
	var s Shape = Base{}
	assert.Zero(t, s.Area())
	assert.Zero(t, Circle{Radius: 3}.Base.Area())
	assert.Zero(t, Rectangle{Length: 2, Breadth: 9}.Base.Area())
}

func TestAreaOverrides(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"circle r=5", NewCircle(5), 78.5},
		{"circle r=0", NewCircle(0), 0},
		{"circle r=2", NewCircle(2), Pi * 2 * 2},
		{"rectangle 4x6", NewRectangle(4, 6), 24},
		{"rectangle 2.5x2", NewRectangle(2.5, 2), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.shape.Area(), 1e-9)
		})
	}
}

func TestDispatchMatchesConcrete(t *testing.T) {
	c := NewCircle(5)
	r := NewRectangle(4, 6)
	var s1, s2 Shape = c, r
	assert.Equal(t, c.Area(), s1.Area())
	assert.Equal(t, r.Area(), s2.Area())
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	assert.Equal(t, []string{"shape", "circle", "rectangle"}, reg.Names())

	s, err := reg.New("rectangle", "4", "6")
	require.NoError(t, err)
	assert.InDelta(t, 24, s.Area(), 1e-9)

	s, err = reg.New("shape")
	require.NoError(t, err)
	assert.Zero(t, s.Area())

	_, err = reg.New("circle", "five")
	require.ErrorIs(t, err, dispatch.ErrInputFormat)
	assert.Contains(t, err.Error(), `radius "five"`)

	_, err = reg.New("triangle", "1", "2", "3")
	require.ErrorIs(t, err, dispatch.ErrUnknownVariant)
}
