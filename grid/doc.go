// Package grid holds the immutable weighted grid that every crucible search
// runs over.
//
// What:
//
//   - Grid wraps a rectangular block of non-negative integer cell costs,
//     stored row-major in a single slice.
//   - Pos addresses a cell by (Row, Col); (0,0) is the top-left corner.
//   - Parse / Read build a Grid from the puzzle's digit text: one row per
//     line, one ASCII digit 0–9 per cell, optional trailing line break.
//
// Why:
//
//   - A search only ever reads costs, so the grid is built once, validated
//     once, and shared by any number of concurrent searches without locks.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrNegativeCost:    a cell holds a negative cost.
//   - ErrCostOutOfRange:  a cell exceeds the bound set with WithMaxCost.
//   - ErrMalformedGrid:   umbrella for every construction failure above, plus
//     non-digit characters in parsed text. errors.Is(err, ErrMalformedGrid)
//     holds for all of them.
package grid
