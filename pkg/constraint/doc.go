// Package constraint defines the geometric predicates a generated page is
// expected to satisfy.
//
// There are three kinds of [Constraint]:
//
//   - Aligned: every box shares the same coordinate on one [Axis]. AxisX
//     means the same left edge, AxisY the same top edge.
//   - Disjoint: two boxes do not overlap. Touching edges are allowed.
//   - Contained: the child box lies entirely inside the parent box.
//
// A constraint reads live geometry from the boxes it references and caches
// its verdict on first evaluation. Constraints should therefore only be
// evaluated once layout and fault injection have finished.
//
// # Properties
//
// [Constraint.Properties] answers two questions used when building a repair
// model. Called with a nil changed property it lists every property the
// constraint concerns. Called with a property that is about to change, it
// lists the properties that become relevant as a consequence, or nothing
// when the dependency graph already links the changing box to the other
// side of the constraint.
//
// # Validity
//
// Aligned constraints over fewer than two boxes and binary constraints over
// a single box can be built but are not valid. [Set.Add] silently drops
// them.
package constraint
