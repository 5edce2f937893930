package game

type Ball struct {
	Id   int `json:"id"`
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
	Dx   int `json:"dx"` // Always -1 or 1
	Dy   int `json:"dy"` // Always -1 or 1
}

// NewBall places a ball at the centre of the canvas heading up and to the right.
func NewBall(canvas Canvas, size, id int) *Ball {
	x, y := canvas.Center(size)
	return &Ball{
		Id:   id,
		X:    x,
		Y:    y,
		Size: size,
		Dx:   1,
		Dy:   -1,
	}
}

func (ball *Ball) Bounds() Rect {
	return Rect{X: ball.X, Y: ball.Y, W: ball.Size, H: ball.Size}
}

// Move advances the ball by step pixels on each axis.
func (ball *Ball) Move(step int) {
	ball.X += ball.Dx * step
	ball.Y += ball.Dy * step
}

func (ball *Ball) CollidesLeftWall() bool {
	return ball.X <= 0
}

func (ball *Ball) CollidesRightWall(canvas Canvas) bool {
	return ball.X+ball.Size >= canvas.Width
}

func (ball *Ball) CollidesTopWall() bool {
	return ball.Y <= 0
}

// FellOut reports whether the ball's bottom edge reached the bottom of the field.
func (ball *Ball) FellOut(canvas Canvas) bool {
	return ball.Y+ball.Size >= canvas.Height
}

func (ball *Ball) HandleCollideLeft() {
	ball.Dx = 1
}

func (ball *Ball) HandleCollideRight() {
	ball.Dx = -1
}

func (ball *Ball) HandleCollideTop() {
	ball.Dy = 1
}

// HandleCollidePaddle sends the ball back up.
func (ball *Ball) HandleCollidePaddle() {
	ball.Dy = -1
}

func (ball *Ball) ReflectVelocityY() {
	ball.Dy = -ball.Dy
}

// CollideWalls reflects the ball off the left, right and top walls and puts it
// back on the wall it crossed. The bottom is open.
func (ball *Ball) CollideWalls(canvas Canvas) {
	if ball.CollidesLeftWall() {
		ball.X = 0
		ball.HandleCollideLeft()
	}
	if ball.CollidesRightWall(canvas) {
		ball.X = canvas.Width - ball.Size
		ball.HandleCollideRight()
	}
	if ball.CollidesTopWall() {
		ball.Y = 0
		ball.HandleCollideTop()
	}
}
