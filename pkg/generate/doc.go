// Package generate builds random nested-box pages.
//
// A [Generator] draws a tree shape from a Poisson degree distribution and a
// uniform depth, then lays out every level with one of three flows: a single
// horizontal row, wrapping rows, or wrapping columns. Flows record an
// influence edge for every value they compute from another, emit an
// alignment constraint for every line they fill, and may inject
// misalignment, overlap and overflow faults.
//
// All randomness comes from [Picker] values seeded from a single master
// seed, so a given seed and [Config] always yield the same page.
package generate
