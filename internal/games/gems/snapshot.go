package gems

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Tick          uint64
	Mode          Mode
	Score         int
	ShufflePasses int
	Selection     string
	HasSelection  bool
	SelectedX     int
	SelectedY     int
	BoardHash     uint64
	BoardW        int
	BoardH        int
	MatchFree     bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Mode:          g.mode,
		Score:         g.score,
		ShufflePasses: g.shufflePasses,
		Selection:     g.ctrl.State().String(),
		BoardHash:     g.grid.Hash(),
		BoardW:        g.grid.Width(),
		BoardH:        g.grid.Height(),
		MatchFree:     !g.grid.HasAnyLocalMatch(),
	}
	if sel, ok := g.ctrl.Selected(); ok {
		snap.HasSelection = true
		snap.SelectedX = sel.X
		snap.SelectedY = sel.Y
	}
	return snap
}
