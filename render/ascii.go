package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/brickbreaker/game"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert RGB color space to grayscale
const grayFactor = 255.0 * 3 / float64(len(asciiChars)-1)

// rgbToGray sums the channels of a pixel.
func rgbToGray(pixel RGBPixel) int {
	return int(pixel.R) + int(pixel.G) + int(pixel.B)
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray int) byte {
	index := int(float64(gray) / grayFactor)
	if index >= len(asciiChars) {
		index = len(asciiChars) - 1
	}
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII draws the state as rows lines of cols characters, one glyph
// per entity kind.
func RenderToASCII(state game.GameState, cols, rows int) string {
	cells := Rasterize(state, cols, rows)
	var ascii strings.Builder
	ascii.Grow((cols + 1) * rows)
	for _, line := range cells {
		for _, cell := range line {
			ascii.WriteRune(cell.Glyph())
		}
		ascii.WriteByte('\n')
	}
	return ascii.String()
}

// RenderToANSI draws the state with 24-bit colour escapes. Each cell is
// written twice so that cells look roughly square in a terminal.
func RenderToANSI(state game.GameState, cols, rows int) string {
	cells := Rasterize(state, cols, rows)
	var ascii strings.Builder
	for _, line := range cells {
		for _, cell := range line {
			if cell == CellEmpty {
				ascii.WriteString("  ")
				continue
			}
			pixel := cell.Color()
			ch := grayToAscii(rgbToGray(pixel))
			ansi := rgbToAnsi(pixel)
			ascii.WriteString(ansi)
			ascii.WriteByte(ch)
			ascii.WriteByte(ch)
			ascii.WriteString("\033[0m") // Reset color after each cell
		}
		ascii.WriteByte('\n')
	}
	return ascii.String()
}

// StatusLine summarises counters and active bonuses.
func StatusLine(state game.GameState) string {
	var flags []string
	if state.PaddleFast {
		flags = append(flags, game.BonusPaddleSpeedUp.Description())
	}
	if state.BallFast {
		flags = append(flags, game.BonusBallSpeedUp.Description())
	}
	line := fmt.Sprintf("Balls: %d  Blocks: %d  Destroyed: %d  Ticks: %d",
		len(state.Balls), state.BlocksLeft, state.BlocksDestroyed, state.Ticks)
	if len(flags) > 0 {
		line += "  [" + strings.Join(flags, ", ") + "]"
	}
	return line
}

// GameOverText is the message hosts show when the game ends.
func GameOverText(msg game.GameOverMessage) string {
	return fmt.Sprintf("Game Over! %d blocks destroyed in %d ticks.", msg.BlocksDestroyed, msg.Ticks)
}
