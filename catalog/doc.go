// Package catalog loads catalog files and resolves catalog references.
//
// A [Cache] holds every parsed catalog file by canonical path and is owned
// by its creator: pass the same Cache to several [Loader] values to share
// parses, or give each its own for isolation. A Loader knows the catalog
// directories declared for each [document.Category] and finds the file that
// defines a named catalog. A [Resolver] turns a
// [document.CatalogReference] into a private copy of the referenced entry
// with its parameters bound.
//
// The Cache is safe for concurrent use and parses each file at most once.
// A Loader's location list is not synchronized; register locations before
// sharing a Loader between goroutines.
package catalog
