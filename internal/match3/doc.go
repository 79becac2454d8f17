// Package match3 provides the board logic for the gemswap tile-matching
// puzzle: constraint-satisfying grid generation with a bounded reshuffle, the
// ±2-window local-match predicate, and the select-then-swap interaction state
// machine with an optional interpolated swap animation.
//
// The package is UI-agnostic and deterministic: screen-point resolution and
// drawing belong to the platform layer, which feeds resolved TileHit events in
// and applies the VisualCommand values that come back out.
package match3
