// Package solver finds knight's tours with an iterative, explicitly
// stacked depth-first search over a sentinel-padded board.
//
// What:
//
//   - Solve(Options): validate, build board + strategy, run the regular
//     or symmetric engine, return the tour and its Statistics.
//   - Regular engine: DFS over an explicit frame stack; optional closed
//     tours (last cell one knight move from the first).
//   - Symmetric engine: builds half-path A while reserving each cell's
//     mirror; splices the mirrored half-path B on completion — always a
//     closed tour (horizontal, vertical or point symmetry).
//   - ValidatePath: replay checker for every tour invariant.
//
// Why:
//
//   - Explicit frames instead of recursion: board area bounds the stack,
//     not the runtime's call-depth limit. Required behavior, not an
//     optimization.
//   - Candidate lists are computed once per frame by an order.Strategy;
//     the engine treats every strategy identically.
//   - MirrorBlocked is a third unavailable state so the symmetric engine
//     can tell "permanently blocked" from "reserved pending path B".
//
// Determinism:
//
//   - A fixed Options value yields the identical Path and identical
//     Statistics on every run; there is no time- or map-order dependence
//     inside the search.
//
// Concurrency:
//
//   - One run owns its Board, frame stack and Statistics; nothing is
//     shared, so independent Solve calls may run concurrently. The only
//     cooperative interruption is the optional TrialLimit budget.
//
// Errors:
//
//   - Configuration sentinels (all pre-search): ErrBadDimensions,
//     ErrStartOutOfRange, ErrStartBlocked, ErrOddClosedBoard,
//     ErrSymmetryParity, ErrOddFreeArea, ErrSelfMirrorStart,
//     ErrMirrorStartBlocked.
//   - Search sentinels: ErrNoTour (proven negative) vs ErrTrialLimit
//     (budget hit — inconclusive, never to be read as "impossible").
package solver
