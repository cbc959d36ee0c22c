// Package tileset implements the tile catalog: a structure-of-arrays store of
// tiles (each tile owning one socket.Word per direction), rotation expansion,
// and per-direction compatibility bitmask precomputation.
//
// A Catalog is configured with a fixed capacity, direction count, and socket
// count per direction, then populated with Add (which may also emit
// rotational copies of a tile) up to capacity, then frozen for solving with
// ComputeCompatibility. Once ComputeCompatibility has run, IsCompatible and
// CompatMaskWords answer "does tile b fit as my neighbor in direction d"
// queries in O(1) / O(MaskWords) respectively — the cost of the O(N²·D)
// precomputation is paid exactly once.
//
// All storage is caller-shaped: New allocates typed Go slices sized by
// RequiredWords, while NewFromBuffer partitions an existing []uint32 with no
// further allocation, for callers who manage their own arenas. Either way, a
// Catalog does not allocate again after construction.
//
// Errors:
//
//	ErrInvalidCapacity      - capacity is 0 or exceeds MaxTiles.
//	ErrInvalidDirectionCount - direction count is outside [1,8].
//	ErrInvalidSocketCount   - socket count per direction is outside [1,8].
//	ErrBufferTooSmall       - a caller-supplied buffer is smaller than required.
//	ErrNotInitialized       - an operation ran before New/NewFromBuffer.
//	ErrCapacityExceeded     - Add would add more tiles than capacity allows.
//	ErrSocketCountMismatch  - Add was given a wrong number of per-direction sockets.
//	ErrCompatNotReady       - a query ran before ComputeCompatibility.
package tileset

import "errors"

// MaxTiles is the largest tile count a Catalog can hold: entropy lists in
// package grid store tile indices in a single byte, capping N at 255.
const MaxTiles = 255

// MaxDirections is the largest direction count a tile may have; a
// socket.Word holds at most socket.MaxFields = 8 fields and the catalog
// reuses that same ceiling for direction count so rotation indices never
// overflow a single socket field's addressable range.
const MaxDirections = 8

var (
	// ErrInvalidCapacity indicates capacity is 0 or exceeds MaxTiles.
	ErrInvalidCapacity = errors.New("tileset: capacity must be in [1, MaxTiles]")
	// ErrInvalidDirectionCount indicates direction count is outside [1,8].
	ErrInvalidDirectionCount = errors.New("tileset: direction count must be in [1,8]")
	// ErrInvalidSocketCount indicates socket count per direction is outside [1,8].
	ErrInvalidSocketCount = errors.New("tileset: socket count must be in [1,8]")
	// ErrBufferTooSmall indicates a caller-supplied buffer is smaller than RequiredWords.
	ErrBufferTooSmall = errors.New("tileset: buffer smaller than RequiredWords(capacity, directionCount)")
	// ErrNotInitialized indicates an operation ran on a catalog that was never constructed via New/NewFromBuffer.
	ErrNotInitialized = errors.New("tileset: catalog not initialized")
	// ErrCapacityExceeded indicates Add would store more tiles (including rotations) than capacity allows.
	ErrCapacityExceeded = errors.New("tileset: add would exceed tile capacity")
	// ErrSocketCountMismatch indicates Add received a socket slice with the wrong direction count.
	ErrSocketCountMismatch = errors.New("tileset: sockets slice length must equal direction count")
	// ErrCompatNotReady indicates a compatibility query ran before ComputeCompatibility.
	ErrCompatNotReady = errors.New("tileset: compatibility masks not computed")
)
