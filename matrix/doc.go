// Package matrix offers the dense boolean storage behind ugraph containers.
//
// BoolDense is a row-major r×c matrix of bool values kept in a single flat
// slice (offset = i*c + j). It provides:
//
//   - Safe indexers: At/Set return ErrOutOfRange instead of panicking.
//   - Deep copies (Clone) and cell-wise equality (Equal).
//   - Shape-changing rebuilds that always allocate a new matrix:
//     Resized keeps the top-left block, Without drops one row and column.
//   - A deterministic row-major visitor (Do) and a debug dump (String).
//
// A nil *BoolDense is a legal "absent" matrix: Rows and Cols report 0, Clone
// returns nil, and Equal treats two nil matrices as equal.
//
// Complexity quicksheet:
//
//	NewBoolDense: O(r*c); At/Set: O(1); Clone/Equal: O(r*c);
//	Resized: O(r'*c'); Without: O(r*c).
package matrix
