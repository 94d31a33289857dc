// Package validate checks the referential integrity of a decoded document.
//
// [Document] registers the entities, parameters and catalog locations a
// document declares and then walks it, checking every entity reference,
// parameter reference and catalog reference against those registries. It
// also applies the schema rules carried by the document's struct tags and
// checks literal parameter defaults against their declared types and
// constraints.
//
// Validation never modifies the document. Every independent failure is
// collected into one [Report] unless [FailFast] is given.
package validate
