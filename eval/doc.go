// Package eval evaluates the small arithmetic and boolean expression language
// used to compose parameter values.
//
// Expressions are parsed and run with [github.com/expr-lang/expr]. Before
// type checking, every identifier is replaced exactly once by a literal node
// holding the parameter's current value, so substituted text is never parsed
// again. Parameters may be written as Name, $Name or ${Name}.
//
// Supported syntax:
//
//	2 + 3 * 4               // 14
//	${Speed} * ${Time}      // 150 when Speed=30 and Time=5
//	sqrt(abs(${A})) / pi    // sqrt sin cos tan abs floor ceil; pi and e
//	$A > 10 && !$Enabled    // comparisons and logic yield true or false
//
// Results use one canonical form (see [Format]): booleans are "true" or
// "false" and numbers use the shortest decimal that round-trips a float64,
// without exponent and without a fractional part for integral values.
package eval
