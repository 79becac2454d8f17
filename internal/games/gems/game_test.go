package gems

import (
	"testing"

	"github.com/gemswap/gemswap/internal/core"
	"github.com/gemswap/gemswap/internal/match3"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	var g *Game
	if mode == ModeInstant {
		g = NewInstant()
	} else {
		g = New()
	}
	g.Reset(testRuntimeConfig(seed))
	if g.tooSmall {
		t.Fatalf("80x24 screen should fit the default board")
	}
	return g
}

// pointerFrame builds an input frame with a press on the given board tile.
func pointerFrame(g *Game, c match3.Coord) core.InputFrame {
	in := core.NewInputFrame()
	in.SetPointer(core.PointerEvent{
		X:       g.boardX + c.X*cellW,
		Y:       g.boardY + c.Y*cellH,
		Pressed: true,
	})
	return in
}

func actionFrame(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// adjacentPair finds two horizontally adjacent tiles of different types.
func adjacentPair(t *testing.T, g *Game) (match3.Coord, match3.Coord) {
	t.Helper()
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x+1 < g.grid.Width(); x++ {
			if g.grid.Tile(x, y) != g.grid.Tile(x+1, y) {
				return match3.C(x, y), match3.C(x+1, y)
			}
		}
	}
	t.Fatal("board has no two adjacent differing tiles")
	return match3.Coord{}, match3.Coord{}
}

func TestResetDeterministicForSeed(t *testing.T) {
	a := newTestGame(t, ModeInstant, 99)
	b := newTestGame(t, ModeInstant, 99)

	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("same seed produced different boards:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}

	c := newTestGame(t, ModeInstant, 100)
	if a.Snapshot().BoardHash == c.Snapshot().BoardHash {
		t.Error("different seeds produced identical boards")
	}
}

func TestResetProducesPlayableBoard(t *testing.T) {
	g := newTestGame(t, ModeInstant, 7)
	snap := g.Snapshot()

	if snap.BoardW != 8 || snap.BoardH != 8 {
		t.Errorf("default board = %dx%d, want 8x8", snap.BoardW, snap.BoardH)
	}
	if snap.ShufflePasses < 1 {
		t.Errorf("shuffle ran %d passes, want at least 1", snap.ShufflePasses)
	}
	if snap.Score != 0 {
		t.Errorf("fresh game score = %d, want 0", snap.Score)
	}
	if snap.Selection != "Idle" {
		t.Errorf("fresh game selection state = %q, want Idle", snap.Selection)
	}
}

func TestTileAtResolvesBoardCells(t *testing.T) {
	g := newTestGame(t, ModeInstant, 1)

	tests := []struct {
		name   string
		px, py int
		want   match3.Coord
		ok     bool
	}{
		{"top-left origin", g.boardX, g.boardY, match3.C(0, 0), true},
		{"inside first cell", g.boardX + cellW - 1, g.boardY + cellH - 1, match3.C(0, 0), true},
		{"second column", g.boardX + cellW, g.boardY, match3.C(1, 0), true},
		{"last cell", g.boardX + (g.grid.Width()-1)*cellW, g.boardY + (g.grid.Height()-1)*cellH, match3.C(g.grid.Width()-1, g.grid.Height()-1), true},
		{"left of board", g.boardX - 1, g.boardY, match3.Coord{}, false},
		{"above board", g.boardX, g.boardY - 1, match3.Coord{}, false},
		{"right of board", g.boardX + g.grid.Width()*cellW, g.boardY, match3.Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := g.tileAt(tt.px, tt.py)
			if ok != tt.ok {
				t.Fatalf("tileAt(%d, %d) ok = %v, want %v", tt.px, tt.py, ok, tt.ok)
			}
			if ok && !hit.Coord.Equal(tt.want) {
				t.Errorf("tileAt(%d, %d) = %v, want %v", tt.px, tt.py, hit.Coord, tt.want)
			}
		})
	}
}

func TestPointerSelectsTile(t *testing.T) {
	g := newTestGame(t, ModeInstant, 3)
	a, _ := adjacentPair(t, g)

	g.Step(pointerFrame(g, a))

	snap := g.Snapshot()
	if !snap.HasSelection {
		t.Fatal("press on a tile did not select it")
	}
	if snap.SelectedX != a.X || snap.SelectedY != a.Y {
		t.Errorf("selected (%d, %d), want %v", snap.SelectedX, snap.SelectedY, a)
	}
	if g.highlighted == nil || !g.highlighted.Equal(a) {
		t.Error("selection did not highlight the tile")
	}
}

func TestInstantSwapScoresAndCommits(t *testing.T) {
	g := newTestGame(t, ModeInstant, 3)
	a, b := adjacentPair(t, g)
	ta := g.grid.Tile(a.X, a.Y)
	tb := g.grid.Tile(b.X, b.Y)

	g.Step(pointerFrame(g, a))
	g.Step(pointerFrame(g, b))

	snap := g.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score after swap = %d, want 1", snap.Score)
	}
	if snap.Selection != "Idle" {
		t.Errorf("state after instant swap = %q, want Idle", snap.Selection)
	}
	if g.grid.Tile(a.X, a.Y) != tb || g.grid.Tile(b.X, b.Y) != ta {
		t.Error("swap did not exchange the grid cells")
	}
	if g.highlighted != nil {
		t.Error("highlight not cleared after swap")
	}
}

func TestAnimatedSwapRunsToCompletion(t *testing.T) {
	g := newTestGame(t, ModeAnimated, 3)
	a, b := adjacentPair(t, g)

	g.Step(pointerFrame(g, a))
	g.Step(pointerFrame(g, b))

	if g.Snapshot().Selection != "Swapping" {
		t.Fatalf("state after animated pick = %q, want Swapping", g.Snapshot().Selection)
	}
	if !g.animating {
		t.Fatal("animated swap did not start the overlay")
	}
	if g.Snapshot().Score != 1 {
		t.Errorf("score = %d, want 1 (committed at pick time)", g.Snapshot().Score)
	}

	// Default duration is 0.5s at 60 ticks/s. Stay clear of the exact
	// boundary tick so float accumulation cannot flip the assertion.
	empty := core.NewInputFrame()
	for i := 0; i < 25; i++ {
		g.Step(empty)
	}
	if g.Snapshot().Selection != "Swapping" {
		t.Fatalf("swap finished early, %d ticks in", 26)
	}
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.Snapshot().Selection != "Idle" {
		t.Errorf("state after animation = %q, want Idle", g.Snapshot().Selection)
	}
	if g.animating {
		t.Error("overlay still active after the ownership handoff")
	}
}

func TestAnimatedSwapIgnoresPressesWhileSwapping(t *testing.T) {
	g := newTestGame(t, ModeAnimated, 5)
	a, b := adjacentPair(t, g)

	g.Step(pointerFrame(g, a))
	g.Step(pointerFrame(g, b))
	g.Step(pointerFrame(g, a)) // mid-animation press

	snap := g.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score = %d, want 1; mid-animation press must not swap", snap.Score)
	}
	if snap.Selection != "Swapping" {
		t.Errorf("state = %q, want Swapping", snap.Selection)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeInstant, 2)
	a, _ := adjacentPair(t, g)

	g.Step(actionFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action did not pause")
	}

	g.Step(pointerFrame(g, a))
	if g.Snapshot().HasSelection {
		t.Error("pointer press selected a tile while paused")
	}

	g.Step(actionFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestRestartRegeneratesBoardAndKeepsScore(t *testing.T) {
	g := newTestGame(t, ModeInstant, 4)
	a, b := adjacentPair(t, g)
	g.Step(pointerFrame(g, a))
	g.Step(pointerFrame(g, b))
	before := g.Snapshot()

	g.Step(actionFrame(core.ActionRestart))
	after := g.Snapshot()

	if after.BoardHash == before.BoardHash {
		t.Error("restart did not regenerate the board")
	}
	if after.Score != before.Score {
		t.Errorf("restart changed score: %d -> %d", before.Score, after.Score)
	}
	if after.HasSelection {
		t.Error("restart kept a stale selection")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Fatal("20x10 screen should be too small for the default board")
	}
	if !g.State().Paused {
		t.Error("too-small screen should report paused state")
	}

	a := match3.C(0, 0)
	g.Step(pointerFrame(g, a))
	if g.Snapshot().HasSelection {
		t.Error("input processed while screen too small")
	}
}

func TestRenderDrawsBoardAndHUD(t *testing.T) {
	g := newTestGame(t, ModeInstant, 6)
	s := core.NewScreen(80, 24)

	g.Render(s)

	out := s.String()
	if out == "" {
		t.Fatal("render produced empty screen")
	}
	cell := s.GetCell(g.boardX+1, g.boardY)
	if r, _ := tileGlyph(g.grid.Tile(0, 0)); cell.Rune != r {
		t.Errorf("tile (0,0) rendered as %q, want %q", cell.Rune, r)
	}

	a, _ := adjacentPair(t, g)
	g.Step(pointerFrame(g, a))
	g.Render(s)
	sx := g.boardX + a.X*cellW + 1
	sy := g.boardY + a.Y*cellH
	if s.GetCell(sx-1, sy).Rune != '[' || s.GetCell(sx+1, sy).Rune != ']' {
		t.Error("selected tile missing highlight brackets")
	}
}

func TestVariantRegistration(t *testing.T) {
	if New().ID() != "gems" {
		t.Errorf("animated variant ID = %q, want gems", New().ID())
	}
	if NewInstant().ID() != "gems_instant" {
		t.Errorf("instant variant ID = %q, want gems_instant", NewInstant().ID())
	}
}
