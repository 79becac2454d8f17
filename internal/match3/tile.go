package match3

// TileType identifies one of the interchangeable gem kinds on the board.
// Valid play values are 1..Kinds; TileNone is the unassigned sentinel and may
// appear only inside generation scratch state, never on a generated board.
type TileType int

// TileNone marks a cell that has not been assigned yet.
const TileNone TileType = 0

// DefaultKinds is the reference number of distinct tile kinds.
const DefaultKinds = 6

// String returns a short gem name for debug output.
func (t TileType) String() string {
	switch t {
	case TileNone:
		return "None"
	case 1:
		return "Amber"
	case 2:
		return "Beryl"
	case 3:
		return "Coral"
	case 4:
		return "Garnet"
	case 5:
		return "Jade"
	case 6:
		return "Topaz"
	default:
		return "Tile?"
	}
}

// InRange returns true if t is a valid play value for a board with the given
// number of kinds.
func (t TileType) InRange(kinds int) bool {
	return t >= 1 && int(t) <= kinds
}
