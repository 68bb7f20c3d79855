// Package chain provides a fluent wrapper around rop.Result
// for building synchronous railway chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a rop.Result or value
// - Then: switch to a new Result[U] via a function
// - Map: transform the successful value (T -> U)
// - Validate/ValidateIfValid/ValidateMessage/ValidateCondition: attach checks
// - Ensure: run side effects on success without changing the result
// - ValidData/Finally: leave the chain
package chain
