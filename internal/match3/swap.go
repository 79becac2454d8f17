package match3

import "math"

// Axis classifies a candidate swap between two picked tiles.
type Axis int

const (
	AxisInvalid Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Invalid"
	}
}

// World-distance thresholds for swap classification, in cell spacings.
// A pick within selfThreshold on an axis is "the same cell" on that axis;
// strictly between the thresholds is "the adjacent cell". Anything else
// (too far, diagonal) is invalid.
const (
	CellSpacing       = 1.0
	selfThreshold     = 0.5 * CellSpacing
	neighborThreshold = 1.5 * CellSpacing
)

// DefaultSwapDuration is the reference interpolated-swap duration in seconds.
const DefaultSwapDuration = 0.5

// ClassifySwap determines the swap axis between two tile world positions.
// Horizontal when the x distance is strictly between the self and neighbor
// thresholds while y stays within the self threshold; Vertical symmetrically;
// Invalid otherwise.
func ClassifySwap(from, to Vec2) Axis {
	dx := math.Abs(to.X - from.X)
	dy := math.Abs(to.Y - from.Y)

	if dx > selfThreshold && dx < neighborThreshold && dy <= selfThreshold {
		return AxisHorizontal
	}
	if dy > selfThreshold && dy < neighborThreshold && dx <= selfThreshold {
		return AxisVertical
	}
	return AxisInvalid
}

// SwapOperation describes an in-flight animated swap. The grid cells are
// already exchanged when the operation starts; the operation only drives the
// two visuals toward each other's start position.
type SwapOperation struct {
	From Coord // coordinate picked first
	To   Coord // coordinate picked second
	Axis Axis

	StartFrom Vec2 // world position of From's visual at swap start
	StartTo   Vec2 // world position of To's visual at swap start

	Elapsed  float64
	Duration float64
}

// Ratio returns elapsed/duration. It is not clamped, so the completing tick
// may place the visuals slightly past their targets.
func (op *SwapOperation) Ratio() float64 {
	if op.Duration <= 0 {
		return 1
	}
	return op.Elapsed / op.Duration
}

// Positions returns the current world positions of the visual that started at
// From and the one that started at To.
func (op *SwapOperation) Positions() (fromPos, toPos Vec2) {
	r := op.Ratio()
	return Lerp(op.StartFrom, op.StartTo, r), Lerp(op.StartTo, op.StartFrom, r)
}

// Done reports whether elapsed time has exceeded the duration.
func (op *SwapOperation) Done() bool {
	return op.Elapsed > op.Duration
}
