package match3

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
)

const (
	// DefaultMinNeighbors is the reference value of the window-match
	// threshold: a cell matches when at least this many of the four cells in
	// its ±2 window (per axis) share its type. The same value sizes the
	// generation run length (run = threshold + 1).
	DefaultMinNeighbors = 2

	// DefaultMaxPasses caps the shuffle pass loop. Shuffle is a best-effort
	// heuristic; hitting the cap with residual matches is accepted behavior.
	DefaultMaxPasses = 200

	// DefaultPickRetries bounds the random partner-cell draws per fix before
	// falling back to a deterministic scan.
	DefaultPickRetries = 32
)

// windowOffsets are the per-axis offsets inspected by the local-match
// predicate. The check is a same-type count inside this window, not a
// contiguous-run detector; non-contiguous neighbors within the window count.
var windowOffsets = [4]int{-2, -1, 1, 2}

// Params configures board construction.
type Params struct {
	Width        int
	Height       int
	Kinds        int // distinct tile kinds, tiles valued 1..Kinds
	MinNeighbors int // window-match threshold; run length is MinNeighbors+1
	PickRetries  int // random draws before the deterministic shuffle fallback
}

// DefaultParams returns the reference 8×8, six-kind configuration.
func DefaultParams() Params {
	return Params{
		Width:        8,
		Height:       8,
		Kinds:        DefaultKinds,
		MinNeighbors: DefaultMinNeighbors,
		PickRetries:  DefaultPickRetries,
	}
}

// Grid owns the rectangular matrix of tile types.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	w, h         int
	kinds        int
	minNeighbors int
	pickRetries  int
	cells        []TileType
	rng          *rand.Rand
}

// NewGrid creates an empty grid for the given parameters.
// Dimensions smaller than the run length are rejected up front: they are the
// only configurations for which run-fill generation could reach a cell with
// no strategy, so the fault surfaces here instead of mid-generation.
func NewGrid(p Params, rng *rand.Rand) (*Grid, error) {
	if p.MinNeighbors <= 0 {
		return nil, ErrBadThreshold
	}
	runLen := p.MinNeighbors + 1
	if p.Width < runLen || p.Height < runLen {
		return nil, fmt.Errorf("%w: %dx%d board needs min dimension %d", ErrBoardTooSmall, p.Width, p.Height, runLen)
	}
	if p.Kinds < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKinds, p.Kinds)
	}
	if p.PickRetries <= 0 {
		p.PickRetries = DefaultPickRetries
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Grid{
		w:            p.Width,
		h:            p.Height,
		kinds:        p.Kinds,
		minNeighbors: p.MinNeighbors,
		pickRetries:  p.PickRetries,
		cells:        make([]TileType, p.Width*p.Height),
		rng:          rng,
	}, nil
}

// Width returns the board width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the board height in cells.
func (g *Grid) Height() int { return g.h }

// Kinds returns the number of distinct tile kinds in play.
func (g *Grid) Kinds() int { return g.kinds }

// RunLength returns the run length laid down during generation.
func (g *Grid) RunLength() int { return g.minNeighbors + 1 }

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// InBounds returns true if (x, y) is within the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Tile returns the tile type at (x, y), or TileNone if out of bounds.
func (g *Grid) Tile(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileNone
	}
	return g.cells[g.index(x, y)]
}

// GenerateSolved overwrites the whole board with a grid composed entirely of
// matches. Cells are filled left-to-right, top-to-bottom; each unassigned
// cell draws a random type and lays down a full run using the first strategy
// that fits: rightward, then downward, then copying the left neighbor. Cells
// already covered by an earlier run's spread are skipped.
//
// The result is deliberately maximally "bad" and is the input to Shuffle.
func (g *Grid) GenerateSolved() {
	for i := range g.cells {
		g.cells[i] = TileNone
	}

	run := g.RunLength()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[g.index(x, y)] != TileNone {
				continue
			}
			t := g.randomTile()
			switch {
			case x+g.minNeighbors < g.w:
				for i := 0; i < run; i++ {
					g.cells[g.index(x+i, y)] = t
				}
			case y+g.minNeighbors < g.h:
				for i := 0; i < run; i++ {
					g.cells[g.index(x, y+i)] = t
				}
			case x-g.minNeighbors >= 0:
				// Piggyback onto the previous horizontal run.
				g.cells[g.index(x, y)] = g.cells[g.index(x-1, y)]
			default:
				// Unreachable for the dimensions NewGrid accepts.
				panic(fmt.Sprintf("match3: no fill strategy for cell %s on %dx%d board", C(x, y), g.w, g.h))
			}
		}
	}
}

// randomTile draws a uniformly random valid tile type.
func (g *Grid) randomTile() TileType {
	return TileType(g.rng.Intn(g.kinds) + 1)
}

// Shuffle iteratively removes local matches: each pass scans the board in
// row-major order and swaps every matching cell with a random cell of a
// different type. Passes repeat until one finds no matching cell or maxPasses
// have elapsed. maxPasses <= 0 selects DefaultMaxPasses.
//
// Shuffle is a heuristic, not a solver: it may return with residual matches
// once the cap is hit. The number of passes run is returned so callers can
// observe whether the cap was reached.
func (g *Grid) Shuffle(maxPasses int) int {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	passes := 0
	for passes < maxPasses {
		passes++
		fixed := false
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				if !g.HasLocalMatch(x, y) {
					continue
				}
				fixed = true
				g.swapWithDifferent(x, y)
			}
		}
		if !fixed {
			break
		}
	}
	return passes
}

// swapWithDifferent exchanges (x, y) with a cell holding a different type.
// Random draws are bounded; after pickRetries misses a deterministic
// row-major scan picks the first differing cell. A single-type board has no
// differing cell and is left untouched.
func (g *Grid) swapWithDifferent(x, y int) {
	i := g.index(x, y)
	t := g.cells[i]

	for try := 0; try < g.pickRetries; try++ {
		j := g.index(g.rng.Intn(g.w), g.rng.Intn(g.h))
		if g.cells[j] != t {
			g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
			return
		}
	}

	for j, c := range g.cells {
		if c != t {
			g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
			return
		}
	}
}

// HasLocalMatch reports whether the cell at (x, y) is considered matching:
// at least minNeighbors of the four horizontal window cells share its type,
// or the same holds vertically. The two axes are evaluated independently.
func (g *Grid) HasLocalMatch(x, y int) bool {
	t := g.Tile(x, y)
	if t == TileNone {
		return false
	}

	count := 0
	for _, dx := range windowOffsets {
		if g.Tile(x+dx, y) == t {
			count++
		}
	}
	if count >= g.minNeighbors {
		return true
	}

	count = 0
	for _, dy := range windowOffsets {
		if g.Tile(x, y+dy) == t {
			count++
		}
	}
	return count >= g.minNeighbors
}

// HasAnyLocalMatch reports whether any cell on the board matches.
// Short-circuits on the first match found.
func (g *Grid) HasAnyLocalMatch() bool {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.HasLocalMatch(x, y) {
				return true
			}
		}
	}
	return false
}

// Swap exchanges the tile types at two coordinates. The result is never
// re-validated against the match predicate; creating new matches is allowed.
// Out-of-bounds coordinates are ignored.
func (g *Grid) Swap(a, b Coord) {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return
	}
	i, j := g.index(a.X, a.Y), g.index(b.X, b.Y)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// TypeCounts returns the multiset of tile types on the board.
func (g *Grid) TypeCounts() map[TileType]int {
	counts := make(map[TileType]int, g.kinds)
	for _, c := range g.cells {
		counts[c]++
	}
	return counts
}

// Clone returns a deep copy of the grid sharing the RNG.
func (g *Grid) Clone() *Grid {
	cells := make([]TileType, len(g.cells))
	copy(cells, g.cells)
	clone := *g
	clone.cells = cells
	return &clone
}

// Hash returns a digest of the board contents for snapshot comparison.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d:", g.w, g.h)
	for _, c := range g.cells {
		fmt.Fprintf(h, "%d,", c)
	}
	return h.Sum64()
}

// String renders the board as a compact text dump for logs and tests.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			fmt.Fprintf(&sb, "%d", g.cells[g.index(x, y)])
		}
	}
	return sb.String()
}
