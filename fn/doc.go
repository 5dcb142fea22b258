// Package fn provides small generic function combinators: composition,
// partial application, call-count limiters, memoisation, and a few ordered
// helpers.
//
// All combinators are package-level generic functions; none retain state
// except the closures they document as stateful ([Once], [Before], [After],
// [Memoize]), and those are safe for concurrent use.
//
//	shout := fn.Comp(strings.ToUpper, func(s string) string { return s + "!" })
//	shout("hey") // "HEY!"
//
//	setup := fn.Once(loadConfig)
//	setup() // loads
//	setup() // cached
package fn
