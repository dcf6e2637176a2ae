// Package depgraph records which box properties were computed from which.
//
// While the layout pass positions boxes it registers an edge every time one
// property's value is derived from another's: a child's X from its previous
// sibling's X and W, a parent's W from its children's X and W, and so on.
// The resulting [Graph] is a directed multigraph over [property.Property]
// values.
//
// # Edge direction
//
// A [Dependency] reads "From is influenced by To". [Graph.InfluencedBy]
// returns the edges whose From is the queried property (what it was
// computed from); [Graph.Influences] returns the edges whose To is the
// queried property (what was computed from it).
//
// # Transitive queries
//
// Both queries accept a transitive flag. A transitive scan is a
// breadth-first walk over edges that does not expand through properties of
// the start property's own box, so a box never "reaches itself" through its
// own width or height.
//
// [Graph.TransitiveClosure] is the variant the repair model uses: for every
// start property it collects the delta of each property reachable through
// InfluencedBy edges. A property's closure is the set of delta variables
// whose value can shift it.
//
// Unknown properties are not an error; every query returns an empty result.
package depgraph
