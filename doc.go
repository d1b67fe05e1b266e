// Package knightour finds knight's tours — Hamiltonian paths of a chess
// knight — on rectangular boards of arbitrary size, optionally closed
// into a loop and optionally mirror- or point-symmetric.
//
// 🐴 What is knightour?
//
//	A deterministic backtracking engine built around:
//		• Sentinel-padded boards: no bounds checks on the hot path
//		• An iterative DFS over an explicit frame stack (no recursion limits)
//		• Three interchangeable move-ordering heuristics:
//		  plain, centrifugal (edges first), Warnsdorff (narrow path first)
//		• A dual-cursor symmetric search with deferred path reconstruction
//		• Move-examination statistics for comparing heuristics
//
// ✨ Why choose knightour?
//
//   - Reproducible – identical options always yield the identical tour and counts
//   - Rock-solid guarantees – strict sentinel errors, config validated up front
//   - Pure Go – no cgo, no hidden runtime deps
//   - Composable – the solver performs no I/O; rendering is a separate consumer
//
// Under the hood, everything is organized into four subpackages:
//
//	board/  — sentinel-padded grid, cell states, the canonical knight move table
//	order/  — the three move-ordering strategies behind one interface
//	solver/ — configuration, validation, regular and symmetric search engines
//	render/ — text dumps and HTML/SVG visualizations of a finished tour
//
// Quick ASCII sketch — each cell of the printed board carries the move
// index at which the knight entered it, '.' marks unvisited cells and
// '#' marks obstacles:
//
//	  0  .  4  .  #
//	  .  .  1  .  5
//	  .  .  .  3  .
//	  .  2  .  .  .
//
// Dive into README.md for full examples and the heuristic comparison table.
//
//	go get github.com/katalvlaran/knightour
package knightour
