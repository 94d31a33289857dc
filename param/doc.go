// Package param provides the scoped name to value mapping that parameter
// references resolve against.
//
// A [Context] is a stack of scopes. [Context.Push] opens a scope and returns
// a [Frame] whose [Frame.Release] closes it; frames must be released in LIFO
// order, and [Context.Scoped] pairs the two on every exit path:
//
//	err := ctx.Scoped(func() error {
//		if err := ctx.Declare(entry.Declarations(), overrides); err != nil {
//			return err
//		}
//		return resolveFields(ctx)
//	})
//
// Lookups search from the innermost scope outward and stop at the first
// definition. A new Context has no scopes at all; callers seed the outermost
// scope explicitly, usually from a document's declarations with
// [Context.Declare].
package param
