package utils

import (
	"testing"
)

func TestDirectionFromString(t *testing.T) {
	testCases := map[string]string{
		"ArrowLeft":  "left",
		"ArrowRight": "right",
		"arrowleft":  "left",
		"a":          "left",
		"D":          "right",
		"ArrowUp":    "",
		"Stop":       "",
		"":           "",
	}

	for input, expected := range testCases {
		result := DirectionFromString(input)
		if result != expected {
			t.Errorf("DirectionFromString(%s) = %s, want %s", input, result, expected)
		}
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		name            string
		value, min, max int
		expected        int
	}{
		{"below range", -3, 0, 700, 0},
		{"inside range", 350, 0, 700, 350},
		{"above range", 705, 0, 700, 700},
		{"on lower edge", 0, 0, 700, 0},
		{"on upper edge", 700, 0, 700, 700},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.value, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestMinMaxInt(t *testing.T) {
	if MinInt(2, 3) != 2 || MinInt(3, 2) != 2 {
		t.Error("MinInt should return the smaller value")
	}
	if MaxInt(2, 3) != 3 || MaxInt(3, 2) != 3 {
		t.Error("MaxInt should return the larger value")
	}
}
