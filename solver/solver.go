package solver

import (
	"github.com/wfccore/wfc/grid"
	"github.com/wfccore/wfc/rng"
	"github.com/wfccore/wfc/tileset"
)

// Solve collapses g into a single consistent tile assignment, using c's
// compatibility masks (computed on demand if not already ready) and r as
// the source of randomness for within-cell tile selection. Among
// equal-entropy cells the last one scanned is selected; r plays no part in
// that choice.
//
// Solve returns (true, nil) when every cell ends up collapsed to a mutually
// compatible tile, and (false, nil) when propagation drove some uncollapsed
// cell's entropy to zero (a contradiction — not an error: contradictions are
// reported, not resolved, and are not retried internally). A non-nil error
// indicates misconfiguration: a nil argument, an empty catalog, or a catalog
// whose direction count isn't the concrete 4-direction topology this solver
// implements.
//
// g must be freshly initialized (via grid.New/NewFromBuffer, or grid.Reset)
// before each call; Solve does not reset a partially-collapsed grid itself,
// since retry discipline (reseed + reinit) is the caller's responsibility.
//
// Complexity: each of the up-to-(rows*cols) iterations scans every cell once
// for the minimum-entropy selection (O(rows*cols)) and touches at most 4
// neighbors for propagation (O(tileCount) each), for an overall O((rows*cols)^2)
// worst case dominated by repeated full-grid scans — the same scan-based
// selection the original algorithm uses, not a priority queue, since the
// grid sizes this core targets make a linear scan cheaper in practice than
// maintaining heap invariants under frequent entropy updates.
func Solve(g *grid.Grid, c *tileset.Catalog, r *rng.RNG) (bool, error) {
	if g == nil || c == nil || r == nil {
		return false, ErrNilArgument
	}
	if c.Count() < 1 {
		return false, ErrEmptyCatalog
	}
	if c.DirectionCount() != 4 {
		return false, ErrUnsupportedDirectionCount
	}
	if !c.CompatReady() {
		if err := c.ComputeCompatibility(); err != nil {
			return false, err
		}
	}

	totalCells := g.Rows() * g.Cols()

	for iteration := 0; iteration < totalCells; iteration++ {
		found := false
		lowestEntropy := 0
		lowestCell := 0

		for i := 0; i < totalCells; i++ {
			if g.Collapsed(i) {
				continue
			}
			count := g.EntropyCount(i)
			if count == 0 {
				return false, nil // contradiction
			}
			if !found || count <= lowestEntropy {
				lowestEntropy = count
				lowestCell = i
				found = true
			}
		}

		if !found {
			return true, nil // every cell collapsed
		}

		k := int(r.Range(0, uint32(lowestEntropy)))
		if k >= lowestEntropy {
			k = lowestEntropy - 1
		}
		if err := g.CollapseCell(lowestCell, k); err != nil {
			return false, err
		}

		propagate(g, c, lowestCell)
	}

	return true, nil
}

// propagate filters the immediate neighbors of the just-collapsed cell's
// four directions against its chosen tile's compatibility masks, one step
// deep. A neighbor driven to zero survivors is left for the next selection
// scan to detect and report as a contradiction — propagate itself never
// recurses.
func propagate(g *grid.Grid, c *tileset.Catalog, collapsedCell int) {
	chosen := g.ChosenTile(collapsedCell)

	for d := 0; d < c.DirectionCount(); d++ {
		n := g.NeighborIndex(collapsedCell, d)
		if n < 0 || g.Collapsed(n) {
			continue
		}
		mask, err := c.CompatMaskWords(chosen, d)
		if err != nil {
			// CompatReady was checked before the loop started; this can only
			// happen if chosen or d is out of range, which Select/CollapseCell
			// already guarantee against.
			continue
		}
		g.CompactEntropies(n, mask)
	}
}
