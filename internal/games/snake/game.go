package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant selects the wall rule a game starts with.
type Variant string

const (
	VariantClassic Variant = "snake"      // Walls as configured (solid by default)
	VariantWrap    Variant = "snake_wrap" // Wrap-around from the start
)

// Layout constants
const (
	hudRows = 1 // Status line above the board
)

// Game adapts Sim to the registry.Game interface: it owns pause state, maps
// input frames onto the simulation and renders the board.
type Game struct {
	variant      Variant
	cfg          config.SnakeConfig
	rng          *rand.Rand
	sim          *Sim
	collideWalls bool
	paused       bool
	highScore    int

	// Screen layout
	screenW  int
	screenH  int
	cellW    int
	cellH    int
	boardX   int
	boardY   int
	tooSmall bool
}

var (
	configMu     sync.RWMutex
	activeConfig = config.DefaultSnakeConfig()
)

// Configure sets the configuration used by games created afterwards.
func Configure(cfg config.SnakeConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = cfg
}

// ActiveConfig returns the configuration new games are created with.
func ActiveConfig() config.SnakeConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeConfig
}

// New creates a classic Snake game using the active configuration.
func New() *Game {
	return NewWithConfig(VariantClassic, ActiveConfig())
}

// NewWrap creates a Snake game that starts with wrap-around walls.
func NewWrap() *Game {
	return NewWithConfig(VariantWrap, ActiveConfig())
}

// NewWithConfig creates a game of the given variant with an explicit configuration.
func NewWithConfig(variant Variant, cfg config.SnakeConfig) *Game {
	walls := cfg.Gameplay.CollideWalls
	if variant == VariantWrap {
		walls = false
	}
	return &Game{
		variant:      variant,
		cfg:          cfg,
		collideWalls: walls,
	}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantWrap), func() registry.Game {
		return NewWrap()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantWrap {
		return "Snake (Wrap)"
	}
	return "Snake"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sim = NewSim(SimConfig{
		Grid:         core.NewGrid(g.cfg.Board.Cells),
		Speed:        g.cfg.Speed,
		CollideWalls: g.collideWalls,
	}, g.rng)
	g.paused = g.cfg.Gameplay.StartPaused
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board layout without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// layout chooses a cell size from the supported display sizes and centers the board.
func (g *Game) layout() {
	n := g.cfg.Board.Cells
	availW := g.screenW - 2 // Board border
	availH := g.screenH - hudRows - 2

	size := config.SelectDisplaySize(g.cfg.Display.Sizes, min(availW, 2*availH))
	g.cellW = max(size/n, 1)
	g.cellH = max(g.cellW/2, 1)

	if g.cellW*n > availW || g.cellH*n > availH {
		g.cellW, g.cellH = 1, 1
	}
	g.tooSmall = n > availW || n > availH

	g.boardX = (g.screenW - (g.cellW*n + 2)) / 2
	g.boardY = hudRows
}

// SetHighScore seeds the best score, typically from persistent storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
}

// HighScore returns the best score seen, including the current run.
func (g *Game) HighScore() int {
	return g.highScore
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	over := g.sim.Status() == StatusGameOver

	// Restart acknowledges a finished game
	if input.Has(core.ActionRestart) && over {
		g.sim.Reset()
		g.paused = g.cfg.Gameplay.StartPaused
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionToggleWalls) {
		g.collideWalls = !g.collideWalls
		g.sim.SetCollideWalls(g.collideWalls)
	}

	if input.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, dir := range input.Directions() {
		g.sim.HandleInput(dir)
	}

	outcome := g.sim.Advance()
	ended := outcome.Terminal()
	if ended && g.sim.Score() >= g.highScore {
		g.highScore = g.sim.Score()
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sim.Score(),
		HighScore: max(g.highScore, g.sim.Score()),
		GameOver:  g.sim.Status() == StatusGameOver,
		Paused:    g.paused,
	}
}

// Sim exposes the underlying simulation for read access.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	n := g.sim.Grid().N
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, g.cellW*n+2, g.cellH*n+2), core.ColorGray)

	g.renderCell(dst, g.sim.Fruit(), '●', core.ColorBrightRed)
	g.renderSnake(dst)

	switch {
	case g.sim.Status() == StatusGameOver:
		g.renderOverlay(dst, "Game Over: "+causeText(g.sim.Cause()),
			fmt.Sprintf("Score: %d  R: restart  Esc: menu", g.sim.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Use space bar to start or pause the game!")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	walls := "wrap"
	if g.collideWalls {
		walls = "solid"
	}
	st := g.State()
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  %s  Walls: %s",
		g.Title(), st.Score, st.HighScore, g.sim.SpeedTier(), walls)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

// renderSnake draws the body tail-first so the head is always on top.
func (g *Game) renderSnake(dst *core.Screen) {
	body := g.sim.Body()
	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		switch {
		case i == 0:
			g.renderCell(dst, seg.Pos, headGlyph(seg.Dir), core.ColorBrightGreen)
		case i == len(body)-1:
			g.renderCell(dst, seg.Pos, '▒', core.ColorGreen)
		default:
			g.renderCell(dst, seg.Pos, '█', core.ColorGreen)
		}
	}
}

// renderCell fills the screen block for one board cell.
func (g *Game) renderCell(dst *core.Screen, pos core.CellIndex, r rune, c core.Color) {
	grid := g.sim.Grid()
	x, y := grid.ToCoords(pos)
	if !grid.InBounds(x, y) {
		return
	}
	dst.FillRect(core.NewRect(g.boardX+1+x*g.cellW, g.boardY+1+y*g.cellH, g.cellW, g.cellH), r, c)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func headGlyph(d core.Direction) rune {
	switch d {
	case core.South:
		return 'v'
	case core.West:
		return '<'
	case core.North:
		return '^'
	default:
		return '>'
	}
}

func causeText(o Outcome) string {
	switch o {
	case OutcomeWallCollision:
		return "hit the wall"
	case OutcomeSelfCollision:
		return "bit yourself"
	case OutcomeNoSpace:
		return "board full"
	default:
		return "ended"
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.sim.Head()
	hx, hy := g.sim.Grid().ToCoords(head.Pos)
	fx, fy := g.sim.Grid().ToCoords(g.sim.Fruit())
	b.WriteString(fmt.Sprintf("Frame: %d, Score: %d, Cadence: %d\n", g.sim.Frame(), g.sim.Score(), g.sim.Cadence()))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.sim.Len(), head.Dir))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Fruit: (%d, %d)\n", hx, hy, fx, fy))
	b.WriteString(fmt.Sprintf("Status: %s, Paused: %v, Walls: %v\n", g.sim.Status(), g.paused, g.collideWalls))
	return b.String()
}
