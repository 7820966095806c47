// Package ranking extracts league standings from the federation's team
// ranking pages.
//
// The page renders what is logically one standings table as two DOM
// structures: a fixed identity table (rank, team) and a horizontally
// scrolling statistics table. Both are parsed independently and joined
// by row position in mergeByPosition, which keeps that fragile layout
// assumption in one visible, testable place.
package ranking
