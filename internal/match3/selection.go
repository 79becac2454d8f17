package match3

// StateKind identifies the controller's interaction state.
type StateKind int

const (
	StateIdle StateKind = iota
	StateSelected
	StateSwapping
)

// String returns the state name.
func (s StateKind) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelected:
		return "Selected"
	case StateSwapping:
		return "Swapping"
	default:
		return "Unknown"
	}
}

// TileHit is a pointer event already resolved to a board coordinate plus the
// tile's current world position. Resolution from screen point to coordinate
// is the renderer's job.
type TileHit struct {
	Coord Coord
	Pos   Vec2
}

// CommandKind identifies a visual command emitted by the controller.
type CommandKind int

const (
	// CmdHighlight toggles the highlighted appearance of one tile.
	CmdHighlight CommandKind = iota
	// CmdMove places a tile's visual at a world position during animation.
	// Coord names the cell the visual occupied before the swap started.
	CmdMove
	// CmdSwapOwnership exchanges which visual element belongs to which board
	// coordinate; emitted exactly once, when an animated swap completes.
	CmdSwapOwnership
)

// VisualCommand is a request to the external renderer. The controller never
// draws; it describes what should change and the platform applies it.
type VisualCommand struct {
	Kind  CommandKind
	Coord Coord
	On    bool  // CmdHighlight
	Pos   Vec2  // CmdMove
	Other Coord // CmdSwapOwnership
}

// Transition describes the outcome of one input event.
type Transition struct {
	From StateKind
	To   StateKind

	// Swapped is true when this event committed a grid swap.
	Swapped bool
	// Axis is set when Swapped is true.
	Axis Axis
	// Commands are the visual changes the renderer should apply.
	Commands []VisualCommand
}

// Controller owns the selection state and drives the two-step select-then-swap
// interaction. It is single-owner and tick-driven: feed it at most one
// resolved pointer event per tick via HandlePointer and advance any pending
// animation with Tick. Once a swap operation starts it always runs to
// completion; there is no cancellation.
type Controller struct {
	grid     *Grid
	animated bool
	duration float64

	state       StateKind
	selected    Coord
	selectedPos Vec2
	op          SwapOperation
}

// NewController creates a controller for the given grid. When animated is
// true, committed swaps interpolate over duration seconds before returning to
// Idle; otherwise they complete instantly. A non-positive duration selects
// DefaultSwapDuration.
func NewController(grid *Grid, animated bool, duration float64) *Controller {
	if duration <= 0 {
		duration = DefaultSwapDuration
	}
	return &Controller{
		grid:     grid,
		animated: animated,
		duration: duration,
	}
}

// State returns the current interaction state.
func (c *Controller) State() StateKind {
	return c.state
}

// Selected returns the currently selected coordinate, if any.
func (c *Controller) Selected() (Coord, bool) {
	return c.selected, c.state == StateSelected
}

// Op returns the in-flight swap operation while in StateSwapping.
func (c *Controller) Op() (SwapOperation, bool) {
	return c.op, c.state == StateSwapping
}

// HandlePointer processes one resolved tile pick.
//
// In Idle the tile becomes the selection. In Selected, re-picking the same
// tile is a no-op (the reference behavior: it neither swaps nor deselects),
// an axis-aligned adjacent pick commits the swap, and anything else replaces
// the selection. In Swapping all input is ignored until the animation ends.
func (c *Controller) HandlePointer(hit TileHit) Transition {
	tr := Transition{From: c.state, To: c.state}

	switch c.state {
	case StateSwapping:
		return tr

	case StateIdle:
		c.selectTile(hit, &tr)
		return tr

	case StateSelected:
		if hit.Coord.Equal(c.selected) {
			return tr
		}

		axis := ClassifySwap(c.selectedPos, hit.Pos)
		if axis == AxisInvalid {
			// Not an adjacent axis-aligned pick: treat as a new selection.
			tr.Commands = append(tr.Commands, VisualCommand{Kind: CmdHighlight, Coord: c.selected, On: false})
			c.selectTile(hit, &tr)
			return tr
		}

		tr.Commands = append(tr.Commands, VisualCommand{Kind: CmdHighlight, Coord: c.selected, On: false})
		c.grid.Swap(c.selected, hit.Coord)
		tr.Swapped = true
		tr.Axis = axis

		if c.animated {
			c.op = SwapOperation{
				From:      c.selected,
				To:        hit.Coord,
				Axis:      axis,
				StartFrom: c.selectedPos,
				StartTo:   hit.Pos,
				Duration:  c.duration,
			}
			c.state = StateSwapping
		} else {
			c.state = StateIdle
		}
		tr.To = c.state
		return tr
	}

	return tr
}

// selectTile records hit as the current selection and requests its highlight.
func (c *Controller) selectTile(hit TileHit, tr *Transition) {
	c.selected = hit.Coord
	c.selectedPos = hit.Pos
	c.state = StateSelected
	tr.To = StateSelected
	tr.Commands = append(tr.Commands, VisualCommand{Kind: CmdHighlight, Coord: hit.Coord, On: true})
}

// Tick advances a pending swap animation by dt seconds and returns the visual
// commands for this tick. Outside StateSwapping it returns nil.
//
// The completing tick's move commands use the unclamped ratio, so the final
// committed positions may overshoot slightly when dt is large.
func (c *Controller) Tick(dt float64) []VisualCommand {
	if c.state != StateSwapping {
		return nil
	}

	c.op.Elapsed += dt
	fromPos, toPos := c.op.Positions()
	cmds := []VisualCommand{
		{Kind: CmdMove, Coord: c.op.From, Pos: fromPos},
		{Kind: CmdMove, Coord: c.op.To, Pos: toPos},
	}

	if c.op.Done() {
		cmds = append(cmds, VisualCommand{Kind: CmdSwapOwnership, Coord: c.op.From, Other: c.op.To})
		c.state = StateIdle
	}
	return cmds
}

// Reset programmatically clears any selection, returning the commands needed
// to undo its highlight. A swap in flight is not interrupted.
func (c *Controller) Reset() []VisualCommand {
	if c.state != StateSelected {
		return nil
	}
	c.state = StateIdle
	return []VisualCommand{{Kind: CmdHighlight, Coord: c.selected, On: false}}
}
