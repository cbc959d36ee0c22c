// Package wfc is a constraint-propagation engine for Wave Function Collapse:
// it turns a small catalog of edge-compatible tiles into a fully collapsed
// 2D grid assignment where every pair of adjacent cells agrees along their
// shared edge.
//
// What is wfc?
//
//	A small, zero-dependency core that brings together:
//
//	  • Socket codec: pack/unpack/reverse directional edge signatures
//	  • Tile catalog: rotation expansion + precomputed compatibility bitmasks
//	  • Grid state:   per-cell superposition (remaining-tile prefix lists)
//	  • Solver:       minimum-remaining-values collapse with single-step propagation
//
// Why choose wfc?
//
//   - Deterministic   — identical seed + identical tile/grid setup reproduces
//     the identical solved grid.
//   - Zero-copy       — catalogs and grids can be built over caller-owned
//     buffers; no hidden allocation inside the hot path.
//   - Pure Go         — no cgo, no image or file I/O, no hidden dependencies.
//
// Everything is organized under four subpackages plus the solver:
//
//	rng/     — seeded linear-congruential generator
//	socket/  — bit-packed directional edge signatures
//	tileset/ — tile catalog, rotation expansion, compatibility masks
//	grid/    — per-cell superposition state
//	solver/  — MRV selection + depth-1 propagation loop
//
// Quick shape:
//
//	tiles := tileset.New(capacity, directions, socketsPerDirection)
//	tiles.Add(assetID, sockets, rotationMultiplicity)
//	tiles.ComputeCompatibility()
//
//	g := grid.New(rows, cols, tiles)
//	ok, err := solver.Solve(g, tiles, rng.New(seed))
//
// A contradiction (some uncollapsed cell runs out of candidates) is reported,
// not resolved — retry with a new seed and a freshly-initialized grid is the
// caller's responsibility, not this package's.
package wfc
