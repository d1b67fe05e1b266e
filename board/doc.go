// Package board implements the sentinel-padded cell grid that the
// knightour search engines operate on.
//
// What:
//
//   - Board embeds a Width×Height logical area inside a padded grid with
//     a 2-cell Blocked ring on every side.
//   - Cells hold a move index (≥ 0) or one of Empty, Blocked, MirrorBlocked.
//   - KnightMoves is the canonical ordered table of the 8 knight offsets.
//   - Connects answers one-knight-move adjacency for the closure checks.
//
// Why:
//
//   - The sentinel ring makes every knight destination addressable, so the
//     hot search loop performs zero range checks.
//   - Obstacles and the border share one state: the engines never care why
//     a cell is unavailable.
//   - MirrorBlocked is a deliberate third unavailable state, released on
//     backtrack by the symmetric engine and never carrying a move index.
//
// Complexity:
//
//   - New:                    O(W×H) time and memory.
//   - Mark/Unmark/IsEmpty/At: O(1), no allocation.
//   - Connects:               O(8).
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrObstacleOutOfRange: obstacle outside the logical area.
//   - ErrObstacleOnBlocked: duplicate obstacle cell.
package board
