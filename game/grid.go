// File: game/grid.go
package game

import "github.com/lguibr/brickbreaker/utils"

// Grid holds the blocks indexed by [row][col]. It is created once per game and
// never resized.
type Grid [][]Block

func NewGrid(cfg utils.Config) Grid {
	grid := make(Grid, cfg.BlockRows)
	for row := range grid {
		grid[row] = make([]Block, cfg.BlockColumns)
		for col := range grid[row] {
			grid[row][col] = NewBlock(row, col, cfg)
		}
	}
	return grid
}

func (grid Grid) Size() int {
	size := 0
	for _, row := range grid {
		size += len(row)
	}
	return size
}

func (grid Grid) VisibleCount() int {
	count := 0
	for _, row := range grid {
		for _, block := range row {
			if block.Visible {
				count++
			}
		}
	}
	return count
}

// Blocks returns a flat, row-major copy of every block.
func (grid Grid) Blocks() []Block {
	blocks := make([]Block, 0, grid.Size())
	for _, row := range grid {
		blocks = append(blocks, row...)
	}
	return blocks
}
