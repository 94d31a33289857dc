// Package resolve assembles a document into a self-contained, literal-only
// copy.
//
// A [Resolver] seeds a root parameter scope from the document's
// declarations, registers its catalog locations and then walks a deep copy
// of the document. Every catalog reference held by a scenario object,
// controller assignment, environment action or maneuver group is replaced by
// the entry it names, and every parameter reference is replaced by its
// value in the scope where it appears. Each node that declares parameters
// opens a child scope for its subtree.
//
// The input document is never modified. Independent failures are collected
// and reported together.
package resolve
