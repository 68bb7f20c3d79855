// Package pending mirrors package solo for Results that are still being
// computed. Each combinator returns a *Pending started in its own goroutine;
// user callbacks run only once the previous Result is known to be successful.
//
// Asynchronous callbacks return an error next to their value. Such errors, and
// panics recovered into *rop.PanicError, travel on a separate channel from
// failure statuses: later combinators pass them along untouched and only
// Catch turns them back into a Result.
//
// Combine..Combine5 are the exception to strict sequencing: their branches are
// started together and joined before the first failure in positional order
// is picked. A failing branch does not cancel its siblings.
package pending
