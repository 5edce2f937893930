package game

// GameState is a read-only snapshot of a Game, safe to hand to other
// goroutines and to encode for clients.
type GameState struct {
	GameID          string  `json:"gameId"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Paddle          Paddle  `json:"paddle"`
	Balls           []Ball  `json:"balls"`
	Blocks          []Block `json:"blocks"`
	Bonuses         []Bonus `json:"bonuses"`
	PaddleFast      bool    `json:"paddleFast"`
	BallFast        bool    `json:"ballFast"`
	Over            bool    `json:"over"`
	BlocksDestroyed int     `json:"blocksDestroyed"`
	BlocksLeft      int     `json:"blocksLeft"`
	Ticks           int     `json:"ticks"`
}

// State copies the current game into a GameState.
func (g *Game) State() GameState {
	balls := make([]Ball, len(g.Balls))
	for i, ball := range g.Balls {
		balls[i] = *ball
	}
	bonuses := make([]Bonus, len(g.Bonuses))
	for i, bonus := range g.Bonuses {
		bonuses[i] = *bonus
	}
	return GameState{
		GameID:          g.ID,
		Width:           g.canvas.Width,
		Height:          g.canvas.Height,
		Paddle:          *g.Paddle,
		Balls:           balls,
		Blocks:          g.Grid.Blocks(),
		Bonuses:         bonuses,
		PaddleFast:      g.PaddleFast,
		BallFast:        g.BallFast,
		Over:            g.Over,
		BlocksDestroyed: g.BlocksDestroyed,
		BlocksLeft:      g.Grid.VisibleCount(),
		Ticks:           g.Ticks,
	}
}

// VisibleBlocks returns only the blocks still in play.
func (s GameState) VisibleBlocks() []Block {
	visible := make([]Block, 0, len(s.Blocks))
	for _, block := range s.Blocks {
		if block.Visible {
			visible = append(visible, block)
		}
	}
	return visible
}
