// Package box provides the geometric box tree that pagen documents are made of.
//
// # Overview
//
// A generated page is a tree of nested rectangles. Every [Box] carries a
// position (top-left corner), a size, an inner padding and an "altered" flag
// that marks boxes into which a layout fault was deliberately injected.
//
// Boxes live in a [Tree] arena. Parent and child links are [ID] values that
// index into the arena rather than pointers, so the tree has no reference
// cycles while upward traversal stays O(1):
//
//	t := box.NewTree()
//	root := t.New(0, 0, 0, 0)
//	leaf := t.New(0, 0, 10, 5)
//	_ = t.AddChild(root.ID, leaf.ID)
//
// IDs are assigned in creation order starting at zero and are unique within
// a tree. Two independent trees reuse the same ID sequence, which keeps
// batch generation deterministic per run.
//
// # Lifecycle
//
// Boxes are created by the generator, positioned by layout managers (see
// pkg/generate) and never removed. Geometry is mutated in place while the
// page is laid out and frozen afterwards; constraint verdicts computed after
// that point stay valid.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Each generation run owns its tree.
package box
