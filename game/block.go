package game

import "github.com/lguibr/brickbreaker/utils"

type Block struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Visible bool `json:"visible"`
}

func NewBlock(row, col int, cfg utils.Config) Block {
	return Block{
		Row:     row,
		Col:     col,
		X:       col * (cfg.BlockWidth + cfg.BlockSpacing),
		Y:       row*(cfg.BlockHeight+cfg.BlockSpacing) + cfg.BlockTop,
		Width:   cfg.BlockWidth,
		Height:  cfg.BlockHeight,
		Visible: true,
	}
}

func (block *Block) Bounds() Rect {
	return Rect{X: block.X, Y: block.Y, W: block.Width, H: block.Height}
}

// Hide makes the block invisible. It returns true only on the first call, so
// a block is destroyed at most once.
func (block *Block) Hide() bool {
	if !block.Visible {
		return false
	}
	block.Visible = false
	return true
}
