// Package property names individual geometric properties of boxes.
//
// A [Property] is the pair (box, attribute). Absolute attributes ([X], [Y],
// [W], [H]) name the generated coordinates of a box; delta attributes ([DX],
// [DY], [DW], [DH]) name the correction a repair model may apply to them.
//
// Properties are plain comparable values: two properties naming the same
// pair are equal and can key a map directly. A [Registry] additionally hands
// out dense integer [Handle]s, which renderers use as stable node and array
// indices. A registry belongs to a single generation run.
//
// [Set] is the collection type used by the dependency graph and the fault
// closure. Its [Set.Sorted] method returns members in the canonical order:
// box ID first, then attribute (DX < DY < DH < DW < X < Y < W < H).
package property
