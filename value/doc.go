// Package value provides [Value], the two-state field type used by every leaf
// of a scenario document.
//
// A Value holds either a literal of its type parameter or a reference to a
// parameter. The zero Value is absent: it is omitted from encoded documents
// and is never confused with an empty string.
//
// # Wire form
//
// A Value is encoded as a single attribute string:
//
//	30            literal in T's lexical space
//	$Speed        reference to parameter Speed
//	${Speed * 2}  expression over parameters
//	$$price       literal string "$price"
//
// Delimiters are stripped once while decoding; the reference string held by a
// Value is always bare.
//
// # Resolution
//
// [Value.Resolve] returns a literal immediately. A bare reference is looked up
// in the given [eval.Lookup]; anything else is evaluated with [eval.Evaluate].
// The resulting string is then parsed into T.
package value
