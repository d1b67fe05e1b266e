// Package render turns solved knight's tours into human-readable output:
// a fixed-width text grid for terminals and a standalone HTML/SVG
// document for browsers.
//
// What:
//
//   - Text prints the move-number grid, column-aligned, with "#" for
//     blocked cells — the classic solver printout.
//   - HTML emits one self-contained document: checkerboard SVG,
//     coordinate labels, the tour polyline colored by progress,
//     start/end markers, move numbers and a metadata header.
//   - Animated mode adds step/play controls driven by embedded
//     JavaScript; the path data is inlined as a JSON array.
//
// Why:
//
//   - The document has zero external references, so a generated file can
//     be mailed, archived or opened from file:// without a server.
//   - Symmetric tours draw their two half-paths in distinct colors with
//     a dashed splice edge, making the mirror structure visible at a
//     glance; closed tours get a dashed closing edge the same way.
//
// Complexity: O(n) output size for an n-cell tour (plus O(W×H) grid).
//
// Errors:
//
//   - ErrEmptyPath: rendering requested for a Result without a path.
//   - ErrBadCellSize: non-positive pixel size for the SVG cells.
package render
