// Package gems implements the tile-matching board game on top of the match3
// engine: board generation, pointer-driven tile swapping, and the terminal
// renderer for both the instant and the animated swap variants.
package gems

import (
	"math/rand"

	"github.com/gemswap/gemswap/internal/config"
	"github.com/gemswap/gemswap/internal/core"
	"github.com/gemswap/gemswap/internal/match3"
	"github.com/gemswap/gemswap/internal/registry"
)

// Mode selects how a committed swap transitions on screen.
type Mode string

const (
	ModeAnimated Mode = "animated"
	ModeInstant  Mode = "instant"
)

// Screen cells per board cell.
const (
	cellW = 4
	cellH = 2
)

// Game implements the gems board game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg  config.GemsConfig
	grid *match3.Grid
	ctrl *match3.Controller

	score         int // completed swaps this session
	shufflePasses int // passes the last shuffle ran

	// Screen layout
	screenW  int
	screenH  int
	tickRate int
	boardX   int
	boardY   int

	// Game state flags
	paused   bool
	tooSmall bool

	// Render state, driven by the controller's visual commands
	highlighted *match3.Coord
	animating   bool
	animOp      match3.SwapOperation
	animPos     map[match3.Coord]match3.Vec2
}

// Package-level variables for config
var (
	selectedConfigPath string
	selectedPreset     config.BoardPreset
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetPreset sets the board preset for the next game.
func SetPreset(preset string) {
	selectedPreset = config.BoardPreset(preset)
}

// New creates a new animated-swap gems game.
func New() *Game {
	return &Game{mode: ModeAnimated}
}

// NewInstant creates a new instant-swap gems game.
func NewInstant() *Game {
	return &Game{mode: ModeInstant}
}

func init() {
	registry.Register("gems", func() registry.Game {
		return New()
	})
	registry.Register("gems_instant", func() registry.Game {
		return NewInstant()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeInstant {
		return "gems_instant"
	}
	return "gems"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeInstant {
		return "Gems (Instant Swap)"
	}
	return "Gems"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.paused = false
	g.clearVisuals()

	g.cfg = g.loadConfig()
	g.buildBoard()
	g.layoutBoard()
	g.checkScreenSize()
}

// loadConfig resolves the board configuration for this game.
func (g *Game) loadConfig() config.GemsConfig {
	cfg, err := config.LoadGems(selectedConfigPath)
	if err != nil {
		cfg = config.DefaultGemsConfig()
	}
	if selectedPreset != "" {
		config.ApplyGemsPreset(&cfg, selectedPreset)
	}
	return cfg
}

// buildBoard creates a fresh grid and controller for the current config.
// The grid is fully overwritten: generation lays down a maximally matched
// board, then the bounded shuffle breaks it up.
func (g *Game) buildBoard() {
	grid, err := match3.NewGrid(g.cfg.Params(), g.rng)
	if err != nil {
		// Config was validated at load; fall back to the known-good default.
		g.cfg = config.DefaultGemsConfig()
		grid, _ = match3.NewGrid(g.cfg.Params(), g.rng)
	}
	grid.GenerateSolved()
	g.shufflePasses = grid.Shuffle(g.cfg.Shuffle.MaxPasses)
	g.grid = grid

	animated := g.mode == ModeAnimated && g.cfg.Swap.Animated
	g.ctrl = match3.NewController(grid, animated, g.cfg.Swap.Duration)
}

// regenerate replaces the board mid-session, keeping the swap count.
func (g *Game) regenerate() {
	g.applyCommands(g.ctrl.Reset())
	g.clearVisuals()
	g.buildBoard()
	g.layoutBoard()
	g.checkScreenSize()
}

// clearVisuals drops all command-driven render state.
func (g *Game) clearVisuals() {
	g.highlighted = nil
	g.animating = false
	g.animPos = make(map[match3.Coord]match3.Vec2)
}

// layoutBoard centers the board area on screen.
func (g *Game) layoutBoard() {
	boardW := g.grid.Width() * cellW
	boardH := g.grid.Height() * cellH
	g.boardX = (g.screenW - boardW) / 2
	g.boardY = (g.screenH - boardH - hudLines) / 2
	if g.boardY < 1 {
		g.boardY = 1
	}
}

// checkScreenSize checks if the screen is large enough for the board + HUD.
func (g *Game) checkScreenSize() {
	minW := g.grid.Width()*cellW + 2
	minH := g.grid.Height()*cellH + hudLines + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.regenerate()
		return core.StepResult{State: g.State()}
	}

	// At most one pointer event per tick reaches the controller.
	if p := in.Pointer; p != nil && p.Pressed {
		if hit, ok := g.tileAt(p.X, p.Y); ok {
			tr := g.ctrl.HandlePointer(hit)
			g.applyCommands(tr.Commands)
			if tr.Swapped {
				g.score++
			}
			if tr.To == match3.StateSwapping {
				if op, opOK := g.ctrl.Op(); opOK {
					g.animOp = op
					g.animating = true
				}
			}
		}
	}

	dt := 1.0 / float64(g.tickRate)
	g.applyCommands(g.ctrl.Tick(dt))

	return core.StepResult{State: g.State()}
}

// tileAt resolves a screen-cell position to a board tile hit.
// The hit's world position is the tile's board coordinate in cell units, so
// adjacent tiles are exactly one cell spacing apart.
func (g *Game) tileAt(px, py int) (match3.TileHit, bool) {
	if px < g.boardX || py < g.boardY {
		return match3.TileHit{}, false
	}
	cx := (px - g.boardX) / cellW
	cy := (py - g.boardY) / cellH
	if !g.grid.InBounds(cx, cy) {
		return match3.TileHit{}, false
	}
	return match3.TileHit{
		Coord: match3.C(cx, cy),
		Pos:   match3.V(float64(cx), float64(cy)),
	}, true
}

// applyCommands updates render state from the controller's visual commands.
func (g *Game) applyCommands(cmds []match3.VisualCommand) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case match3.CmdHighlight:
			if cmd.On {
				c := cmd.Coord
				g.highlighted = &c
			} else if g.highlighted != nil && g.highlighted.Equal(cmd.Coord) {
				g.highlighted = nil
			}
		case match3.CmdMove:
			g.animPos[cmd.Coord] = cmd.Pos
		case match3.CmdSwapOwnership:
			// The visuals landed on their grid cells; drop the overlay.
			g.animating = false
			g.animPos = make(map[match3.Coord]match3.Vec2)
		}
	}
}

// BoardSize reports the current board dimensions in tiles.
func (g *Game) BoardSize() (w, h int) {
	return g.grid.Width(), g.grid.Height()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false, // the board session is open-ended
		Paused:   g.paused || g.tooSmall,
	}
}
