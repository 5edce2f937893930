package utils

const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Key names sent by browser and terminal clients.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)
