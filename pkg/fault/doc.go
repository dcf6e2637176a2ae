// Package fault computes the smallest part of a page that a repair model
// has to cover.
//
// Starting from the constraints that fail, [Closure] collects the properties
// those constraints concern and keeps expanding: every constraint that
// reports new relevant properties for a faulty property joins the model, and
// every property computed from a faulty property becomes faulty too. The
// walk ends when no new property is discovered.
//
// [Reduce] builds on Closure and resolves which delta variables a relative
// repair model needs, using the transitive closure of the dependency graph.
package fault
