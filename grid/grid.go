// Package grid's Grid type and its construction, collapse, and topology
// operations. See types.go for sentinel errors.
package grid

import "github.com/wfccore/wfc/tileset"

// Grid holds the per-cell superposition state for a rows x cols board bound
// to a tile catalog of tileCount tiles.
//
// Cell lifecycle: every cell starts with collapsed=0, entropyCount=tileCount,
// and entropies[0:tileCount) holding the identity permutation 0..tileCount-1.
// Once collapsed=1 the cell is terminal: entropyCount becomes 1 and
// entropies[0] holds the chosen tile index.
type Grid struct {
	rows, cols int
	tileCount  int

	cellsProcessed int

	collapsed    []uint8
	entropyCount []uint8
	entropies    []uint8 // rows*cols*tileCount, row-major per cell, prefix-list semantics
}

// RequiredBytes returns the number of bytes a buffer passed to NewFromBuffer
// must hold for the given dimensions and tile count: sizeof(u8) * (2*R*C +
// R*C*N), one byte each for collapsed and entropyCount per cell plus one
// byte per (cell, tile) entropy slot.
func RequiredBytes(rows, cols, tileCount int) int {
	cells := rows * cols
	return 2*cells + cells*tileCount
}

func validateDims(rows, cols, tileCount int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if tileCount < 1 {
		return ErrEmptyCatalog
	}
	return nil
}

// New allocates a Grid that owns its storage, bound to catalog's current
// tile count, and initializes every cell to the fully-superposed state.
//
// Complexity: O(rows*cols*tileCount) to fill the initial identity
// permutation for every cell's entropy prefix list.
func New(rows, cols int, catalog *tileset.Catalog) (*Grid, error) {
	if catalog == nil {
		return nil, ErrEmptyCatalog
	}
	tileCount := catalog.Count()
	if err := validateDims(rows, cols, tileCount); err != nil {
		return nil, err
	}
	cells := rows * cols
	g := &Grid{
		rows:         rows,
		cols:         cols,
		tileCount:    tileCount,
		collapsed:    make([]uint8, cells),
		entropyCount: make([]uint8, cells),
		entropies:    make([]uint8, cells*tileCount),
	}
	g.resetCells()
	return g, nil
}

// NewFromBuffer partitions a caller-owned buf into a Grid's three arrays
// with zero additional allocation: buf must have length >=
// RequiredBytes(rows, cols, catalog.Count()). Layout is
// [collapsed][entropyCount][entropies], matching RequiredBytes' formula.
func NewFromBuffer(buf []uint8, rows, cols int, catalog *tileset.Catalog) (*Grid, error) {
	if catalog == nil {
		return nil, ErrEmptyCatalog
	}
	tileCount := catalog.Count()
	if err := validateDims(rows, cols, tileCount); err != nil {
		return nil, err
	}
	cells := rows * cols
	if len(buf) < RequiredBytes(rows, cols, tileCount) {
		return nil, ErrBufferTooSmall
	}

	off := 0
	collapsed := buf[off : off+cells]
	off += cells
	entropyCount := buf[off : off+cells]
	off += cells
	entropies := buf[off : off+cells*tileCount]

	g := &Grid{
		rows:         rows,
		cols:         cols,
		tileCount:    tileCount,
		collapsed:    collapsed,
		entropyCount: entropyCount,
		entropies:    entropies,
	}
	g.resetCells()
	return g, nil
}

func (g *Grid) resetCells() {
	cells := g.rows * g.cols
	for i := 0; i < cells; i++ {
		g.collapsed[i] = 0
		g.entropyCount[i] = uint8(g.tileCount)
		base := i * g.tileCount
		for k := 0; k < g.tileCount; k++ {
			g.entropies[base+k] = uint8(k)
		}
	}
	g.cellsProcessed = 0
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// TileCount returns N, the catalog tile count the grid was bound to.
func (g *Grid) TileCount() int { return g.tileCount }

// CellsProcessed returns the number of cells collapsed so far in the
// current solve run, a progress-visibility accessor for long-running solves.
func (g *Grid) CellsProcessed() int { return g.cellsProcessed }

// Collapsed reports whether cell i is collapsed.
func (g *Grid) Collapsed(i int) bool { return g.collapsed[i] != 0 }

// EntropyCount returns the number of tiles still possible for cell i.
func (g *Grid) EntropyCount(i int) int { return int(g.entropyCount[i]) }

// Entropy returns the tile index at position k of cell i's prefix list.
// Only k < EntropyCount(i) is meaningful.
func (g *Grid) Entropy(i, k int) int {
	return int(g.entropies[i*g.tileCount+k])
}

// ChosenTile returns the tile index a collapsed cell was set to (position 0
// of its prefix list). Only meaningful when Collapsed(i) is true.
func (g *Grid) ChosenTile(i int) int {
	return int(g.entropies[i*g.tileCount+0])
}

// Index converts (x,y) board coordinates to a row-major cell index.
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// Coords converts a row-major cell index back to (x,y) board coordinates.
func (g *Grid) Coords(i int) (x, y int) { return i % g.cols, i / g.cols }

// direction offsets for the concrete 4-direction case: 0=up, 1=right,
// 2=down, 3=left. The generalization to D != 4 is left unimplemented;
// NeighborIndex only handles d in [0,4).
var dirOffsets = [4][2]int{
	{0, -1}, // up
	{1, 0},  // right
	{0, 1},  // down
	{-1, 0}, // left
}

// NeighborIndex returns the index of cell i's neighbor in direction d (0=up,
// 1=right, 2=down, 3=left), or -1 if that neighbor falls outside the grid
// or d is outside [0,4).
func (g *Grid) NeighborIndex(i, d int) int {
	if d < 0 || d >= 4 {
		return -1
	}
	x, y := g.Coords(i)
	off := dirOffsets[d]
	nx, ny := x+off[0], y+off[1]
	if nx < 0 || ny < 0 || nx >= g.cols || ny >= g.rows {
		return -1
	}
	return g.Index(nx, ny)
}

// CollapseCell collapses cell i to the tile currently at position k of its
// prefix list: that tile is moved to position 0, entropyCount becomes 1,
// collapsed becomes true, and the processed-cell counter increments.
//
// The prefix list is a bag, not an ordered record — the tile previously at
// position 0 is not preserved; this is intentional.
//
// Fails with ErrIndexOutOfRange, ErrAlreadyCollapsed, or ErrChoiceOutOfRange
// without mutating the cell.
func (g *Grid) CollapseCell(i, k int) error {
	cells := g.rows * g.cols
	if i < 0 || i >= cells {
		return ErrIndexOutOfRange
	}
	if g.collapsed[i] != 0 {
		return ErrAlreadyCollapsed
	}
	if k < 0 || k >= int(g.entropyCount[i]) {
		return ErrChoiceOutOfRange
	}

	base := i * g.tileCount
	g.entropies[base+0] = g.entropies[base+k]
	g.entropyCount[i] = 1
	g.collapsed[i] = 1
	g.cellsProcessed++
	return nil
}

// CompactEntropies rewrites cell i's prefix list to keep only tiles whose
// bit is set in mask (a tileset.Catalog.MaskWords()-word bitmask), in place,
// preserving relative order, and returns the new entropy count. Used by
// package solver's propagation step; exported so callers needing a custom
// propagation strategy (e.g. a full arc-consistency sweep) can reuse the
// compaction primitive without reimplementing it.
func (g *Grid) CompactEntropies(i int, mask []uint32) int {
	base := i * g.tileCount
	count := int(g.entropyCount[i])
	survivors := 0
	for k := 0; k < count; k++ {
		tile := g.entropies[base+k]
		if mask[tile/32]&(1<<uint(tile%32)) != 0 {
			g.entropies[base+survivors] = tile
			survivors++
		}
	}
	g.entropyCount[i] = uint8(survivors)
	return survivors
}

// Reset restores every cell to the fully-superposed, uncollapsed state,
// for a caller retrying a contradicted solve with a new RNG seed.
func (g *Grid) Reset() {
	g.resetCells()
}
