// Package grid implements the per-cell superposition state collapsed by
// package solver: for each cell, a collapsed flag, a remaining-tile count
// (entropy), and a prefix list of still-possible tile indices.
//
// A Grid is bound to a tileset.Catalog at construction time — its per-cell
// tile-index arrays are sized to the catalog's tile count as it stood at
// that moment, so the catalog must be fully populated before the grid is
// built. Like package tileset, a Grid can own its storage (New) or borrow a
// caller-supplied buffer (NewFromBuffer).
//
// Errors:
//
//	ErrInvalidDimensions - rows or cols is less than 1.
//	ErrEmptyCatalog      - the bound catalog has zero tiles.
//	ErrBufferTooSmall    - a caller-supplied buffer is smaller than required.
//	ErrIndexOutOfRange   - a cell index is outside [0, rows*cols).
//	ErrAlreadyCollapsed  - CollapseCell was called on a collapsed cell.
//	ErrChoiceOutOfRange  - CollapseCell's choice index is outside [0, entropy_count).
package grid

import "errors"

var (
	// ErrInvalidDimensions indicates rows or cols is less than 1.
	ErrInvalidDimensions = errors.New("grid: rows and cols must each be >= 1")
	// ErrEmptyCatalog indicates the catalog bound at grid-init time has zero tiles.
	ErrEmptyCatalog = errors.New("grid: bound catalog has zero tiles")
	// ErrBufferTooSmall indicates a caller-supplied buffer is smaller than RequiredBytes.
	ErrBufferTooSmall = errors.New("grid: buffer smaller than RequiredBytes(rows, cols, tileCount)")
	// ErrIndexOutOfRange indicates a cell index outside [0, rows*cols).
	ErrIndexOutOfRange = errors.New("grid: cell index out of range")
	// ErrAlreadyCollapsed indicates CollapseCell targeted an already-collapsed cell.
	ErrAlreadyCollapsed = errors.New("grid: cell already collapsed")
	// ErrChoiceOutOfRange indicates CollapseCell's choice index was outside [0, entropy_count).
	ErrChoiceOutOfRange = errors.New("grid: choice index out of range")
)
