// File: game/game.go
package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/brickbreaker/utils"
)

// Game is the whole state of one match. It is not safe for concurrent use;
// GameActor serialises access to it.
type Game struct {
	ID      string
	cfg     utils.Config
	canvas  Canvas
	Paddle  *Paddle
	Balls   []*Ball
	Grid    Grid
	Bonuses []*Bonus

	PaddleFast bool
	BallFast   bool
	Over       bool

	BlocksDestroyed int
	Ticks           int

	rng     *rand.Rand
	lastID  int
	tracker *CollisionTracker
}

// TickReport lists what happened during one Tick.
type TickReport struct {
	DestroyedBlocks  [][2]int // [row, col]
	SpawnedBonuses   []BonusKind
	CollectedBonuses []BonusKind
	LostBalls        int
	GameOver         bool
}

// New creates a game with one ball, a centred paddle and a full grid. A nil
// rng is replaced by a time-seeded one.
func New(cfg utils.Config, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		ID:      uuid.NewString(),
		cfg:     cfg,
		canvas:  NewCanvas(cfg.Width, cfg.Height),
		Paddle:  NewPaddle(cfg),
		Grid:    NewGrid(cfg),
		Balls:   make([]*Ball, 0, 4),
		Bonuses: make([]*Bonus, 0),
		rng:     rng,
		tracker: NewCollisionTracker(),
	}
	g.spawnBall()
	return g
}

func (g *Game) Config() utils.Config { return g.cfg }
func (g *Game) Canvas() Canvas       { return g.canvas }

func (g *Game) nextID() int {
	g.lastID++
	return g.lastID
}

func (g *Game) spawnBall() *Ball {
	ball := NewBall(g.canvas, g.cfg.BallSize, g.nextID())
	g.Balls = append(g.Balls, ball)
	return ball
}

func (g *Game) ballStep() int {
	if g.BallFast {
		return g.cfg.BallStep * g.cfg.SpeedUpFactor
	}
	return g.cfg.BallStep
}

func (g *Game) paddleMultiplier() int {
	if g.PaddleFast {
		return g.cfg.SpeedUpFactor
	}
	return 1
}

// MovePaddle applies one discrete key press. Input after game over is ignored.
func (g *Game) MovePaddle(direction string) bool {
	if g.Over {
		return false
	}
	return g.Paddle.Move(direction, g.paddleMultiplier(), g.canvas)
}

// Tick runs one step of the update loop: balls, then bonuses. Once the last
// ball is lost the game is over and further ticks do nothing.
func (g *Game) Tick() TickReport {
	report := TickReport{}
	if g.Over {
		return report
	}
	g.Ticks++

	step := g.ballStep()
	survivors := g.Balls[:0]
	for _, ball := range g.Balls {
		ball.Move(step)
		ball.CollideWalls(g.canvas)
		g.collidePaddle(ball)
		g.collideBlocks(ball, &report)

		if ball.FellOut(g.canvas) {
			g.tracker.ForgetObject1(ball.Id)
			report.LostBalls++
			continue
		}
		survivors = append(survivors, ball)
	}
	for i := len(survivors); i < len(g.Balls); i++ {
		g.Balls[i] = nil
	}
	g.Balls = survivors

	if len(g.Balls) == 0 {
		g.Over = true
		report.GameOver = true
		return report
	}

	g.moveBonuses(&report)
	return report
}

func (g *Game) collidePaddle(ball *Ball) {
	key := CollisionKey{Object1ID: ball.Id, Object2ID: paddleObjectID}
	if !ball.Bounds().Intersects(g.Paddle.Bounds()) {
		g.tracker.EndCollision(key)
		return
	}
	if g.tracker.BeginCollision(key) {
		ball.HandleCollidePaddle()
	}
}

// collideBlocks hides every visible block the ball overlaps and reflects the
// vertical direction once per block, so two blocks hit in the same tick cancel
// out.
func (g *Game) collideBlocks(ball *Ball, report *TickReport) {
	bounds := ball.Bounds()

	for row := range g.Grid {
		for col := range g.Grid[row] {
			block := &g.Grid[row][col]
			if !block.Visible || !bounds.Intersects(block.Bounds()) {
				continue
			}
			ball.ReflectVelocityY()
			if block.Hide() {
				g.BlocksDestroyed++
				report.DestroyedBlocks = append(report.DestroyedBlocks, [2]int{row, col})
				g.rollBonus(block, report)
			}
		}
	}
}

func (g *Game) rollBonus(block *Block, report *TickReport) {
	if g.rng.Intn(100) >= g.cfg.BonusChance {
		return
	}
	kind := BonusKind(g.rng.Intn(int(bonusKindCount)))
	g.Bonuses = append(g.Bonuses, NewBonus(g.nextID(), block.X, block.Y, g.cfg.BonusSize, kind))
	report.SpawnedBonuses = append(report.SpawnedBonuses, kind)
}

func (g *Game) moveBonuses(report *TickReport) {
	paddleBounds := g.Paddle.Bounds()
	remaining := g.Bonuses[:0]

	for _, bonus := range g.Bonuses {
		bonus.Fall(g.cfg.BonusSpeed)

		if bonus.Bounds().Intersects(paddleBounds) {
			g.applyBonus(bonus.Kind)
			report.CollectedBonuses = append(report.CollectedBonuses, bonus.Kind)
			continue
		}
		if bonus.Gone(g.canvas) {
			continue
		}
		remaining = append(remaining, bonus)
	}
	for i := len(remaining); i < len(g.Bonuses); i++ {
		g.Bonuses[i] = nil
	}
	g.Bonuses = remaining
}

func (g *Game) applyBonus(kind BonusKind) {
	switch kind {
	case BonusExtraBall:
		g.spawnBall()
	case BonusPaddleSpeedUp:
		g.PaddleFast = true
	case BonusBallSpeedUp:
		g.BallFast = true
	}
}
