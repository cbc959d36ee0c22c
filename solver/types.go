// Package solver implements the collapse/propagation loop: repeatedly
// select the uncollapsed cell with the fewest remaining tiles (minimum
// remaining values, "MRV"), collapse it to one randomly-chosen tile, and
// propagate that choice's constraints one step to its immediate neighbors.
//
// Propagation is depth-1 by design: only direct neighbors of a
// just-collapsed cell are filtered, not a full arc-consistency sweep. This
// is fast and usually sufficient for short socket vocabularies, but it
// raises the odds of a contradiction surfacing only later — the caller
// compensates by reseeding and retrying the whole solve on a fresh grid, not
// this package.
//
// Solve's concrete neighbor topology is the 4-direction case (up, right,
// down, left); catalogs configured with a direction count other than 4 are
// rejected with ErrUnsupportedDirectionCount, since the topology for other
// direction counts is left unimplemented.
//
// Errors:
//
//	ErrNilArgument             - grid, catalog, or rng is nil.
//	ErrEmptyCatalog            - catalog has zero tiles.
//	ErrUnsupportedDirectionCount - catalog's direction count isn't 4.
package solver

import "errors"

var (
	// ErrNilArgument indicates a nil grid, catalog, or RNG was passed to Solve.
	ErrNilArgument = errors.New("solver: grid, catalog, and rng must be non-nil")
	// ErrEmptyCatalog indicates the catalog has zero tiles.
	ErrEmptyCatalog = errors.New("solver: catalog has zero tiles")
	// ErrUnsupportedDirectionCount indicates the catalog's direction count isn't the
	// concrete 4-direction case this solver implements.
	ErrUnsupportedDirectionCount = errors.New("solver: only 4-direction catalogs are supported")
)
