// Package registry tracks the names declared by one document so references
// to them can be checked.
//
// A [Registry] is an ordered set of names, each with metadata of type M.
// Registries nest: a child created with [Registry.Child] sees every name of
// its ancestors and may shadow them, which models parameter scoping. Each
// name may be added to one registry only once.
//
// Registries belong to a single document and are not safe for concurrent
// use.
package registry
