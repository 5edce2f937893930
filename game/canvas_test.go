package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(800, 600)
	assert.Equal(t, 800, canvas.Width)
	assert.Equal(t, 600, canvas.Height)

	assert.Panics(t, func() { NewCanvas(0, 600) })
	assert.Panics(t, func() { NewCanvas(800, -1) })
}

func TestCanvas_Center(t *testing.T) {
	x, y := NewCanvas(800, 600).Center(10)
	assert.Equal(t, 395, x)
	assert.Equal(t, 295, y)
}

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 20, H: 20}
	testCases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlap", Rect{X: 110, Y: 110, W: 20, H: 20}, true},
		{"Contained", Rect{X: 105, Y: 105, W: 5, H: 5}, true},
		{"Contains", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
		{"TouchRightEdge", Rect{X: 120, Y: 100, W: 20, H: 20}, false},
		{"TouchBottomEdge", Rect{X: 100, Y: 120, W: 20, H: 20}, false},
		{"TouchLeftEdge", Rect{X: 80, Y: 100, W: 20, H: 20}, false},
		{"FarAway", Rect{X: 300, Y: 300, W: 20, H: 20}, false},
		{"OneColumnOverlap", Rect{X: 119, Y: 100, W: 20, H: 20}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.other))
			assert.Equal(t, tc.want, tc.other.Intersects(base), "Intersects must be symmetric")
		})
	}
}
