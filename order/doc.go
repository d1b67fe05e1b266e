// Package order provides interchangeable move-ordering strategies for
// the knightour search engines.
//
// What:
//
//   - Strategy: (board snapshot, position) → ordered legal destinations
//     plus the examination cost of producing them.
//   - Plain: canonical KnightMoves order, emptiness filter only.
//   - Centrifugal: farthest-from-center first (squared Euclidean metric).
//   - Warnsdorff: fewest onward moves first (classic narrow-path rule).
//
// Why:
//
//   - The order candidates are tried in dominates backtracking cost by
//     orders of magnitude; which heuristic wins depends on board shape
//     and start cell, so the choice stays with the caller.
//   - Strategies are the only place degree heuristics are computed — the
//     engine consumes candidate lists uniformly and never special-cases
//     a particular strategy.
//
// Determinism:
//
//   - All strategies are pure functions of the board snapshot and tie-break
//     by the canonical KnightMoves enumeration, so a fixed configuration
//     always produces the identical search and identical statistics.
//
// Complexity:
//
//   - Plain:       O(8) per call.
//   - Centrifugal: O(8) examinations + stable sort of ≤ 8 candidates.
//   - Warnsdorff:  O(8 + 8·|candidates|) examinations.
//
// Errors:
//
//   - ErrUnknownHeuristic: Heuristic value outside Plain/Centrifugal/Warnsdorff.
package order
