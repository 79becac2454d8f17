package match3

import "errors"

var (
	// ErrBoardTooSmall indicates a board dimension below the minimum run
	// length, for which run-fill generation has no valid strategy.
	ErrBoardTooSmall = errors.New("match3: board dimensions must be at least the run length")
	// ErrTooFewKinds indicates fewer than two tile kinds, which makes a
	// match-free shuffle impossible.
	ErrTooFewKinds = errors.New("match3: at least two tile kinds are required")
	// ErrBadThreshold indicates a non-positive neighbor-match threshold.
	ErrBadThreshold = errors.New("match3: neighbor threshold must be positive")
)
