// Package solo contains the synchronous railway combinators over rop.Result.
// Every combinator inspects the status first, so a failed Result flows
// through later steps untouched and their callbacks are never invoked.
//
// Highlights:
// - Map/MapList: transform successful data
// - Switch: continue with a function returning a new Result (bind)
// - Validate/ValidateMessage/ValidateCondition/ValidateNotNil: append
//   messages on failed checks, optionally skipping already failed input
// - Combine..Combine5: merge independent Results, first failure wins
// - ToItems/AsItems: lift a slice Result into rop.Items
// - Tee/Finally: side effects and reduction to a plain value
package solo
