package game

// Rect is an axis-aligned bounding box in field pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and other share a non-empty area. Rectangles
// that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Canvas is the play-field. The origin is the top-left corner and y grows
// downwards.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewCanvas(width, height int) Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas dimensions must be positive")
	}
	return Canvas{Width: width, Height: height}
}

// Center returns the top-left corner that centres a size×size square.
func (c Canvas) Center(size int) (int, int) {
	return c.Width/2 - size/2, c.Height/2 - size/2
}
