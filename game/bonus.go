package game

import "fmt"

type BonusKind int

const (
	BonusExtraBall BonusKind = iota
	BonusPaddleSpeedUp
	BonusBallSpeedUp

	bonusKindCount // must stay last
)

var bonusKindNames = [...]string{
	BonusExtraBall:     "extraBall",
	BonusPaddleSpeedUp: "increaseSpeed",
	BonusBallSpeedUp:   "increaseBallSpeed",
}

var bonusKindDescriptions = [...]string{
	BonusExtraBall:     "Extra ball",
	BonusPaddleSpeedUp: "Paddle speed up",
	BonusBallSpeedUp:   "Ball speed up",
}

func (kind BonusKind) String() string {
	if kind < 0 || kind >= bonusKindCount {
		return fmt.Sprintf("BonusKind(%d)", int(kind))
	}
	return bonusKindNames[kind]
}

// Description is the human readable label hosts show next to a falling bonus.
func (kind BonusKind) Description() string {
	if kind < 0 || kind >= bonusKindCount {
		return "Unknown bonus"
	}
	return bonusKindDescriptions[kind]
}

func (kind BonusKind) MarshalText() ([]byte, error) {
	if kind < 0 || kind >= bonusKindCount {
		return nil, fmt.Errorf("unknown bonus kind %d", int(kind))
	}
	return []byte(kind.String()), nil
}

func (kind *BonusKind) UnmarshalText(text []byte) error {
	for k := BonusKind(0); k < bonusKindCount; k++ {
		if k.String() == string(text) {
			*kind = k
			return nil
		}
	}
	return fmt.Errorf("unknown bonus kind %q", text)
}

// Bonus is a power-up falling from a destroyed block.
type Bonus struct {
	Id   int       `json:"id"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Size int       `json:"size"`
	Kind BonusKind `json:"kind"`
}

func NewBonus(id, x, y, size int, kind BonusKind) *Bonus {
	return &Bonus{Id: id, X: x, Y: y, Size: size, Kind: kind}
}

func (bonus *Bonus) Bounds() Rect {
	return Rect{X: bonus.X, Y: bonus.Y, W: bonus.Size, H: bonus.Size}
}

func (bonus *Bonus) Fall(speed int) {
	bonus.Y += speed
}

// Gone reports whether the bonus has left the bottom of the canvas.
func (bonus *Bonus) Gone(canvas Canvas) bool {
	return bonus.Y > canvas.Height
}
