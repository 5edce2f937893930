package utils

import "strings"

// DirectionFromString maps a key name to an internal paddle direction.
// Unknown keys map to "".
func DirectionFromString(direction string) string {
	switch strings.ToLower(direction) {
	case "arrowleft", "left", "a":
		return DirectionLeft
	case "arrowright", "right", "d":
		return DirectionRight
	}
	return ""
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max int) int {
	return MaxInt(min, MinInt(value, max))
}
