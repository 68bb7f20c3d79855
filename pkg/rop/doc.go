// Package rop defines the Result value at the center of the railway-oriented
// algebra: data, a Status and an ordered list of messages.
//
// Results are built with Create, CreateWithMessage, CreateWithError and
// Validate, paged collections with CreateItems. AsValidData is the exit from
// the algebra back to ordinary (value, error) handling.
//
// Combinators live in sub-packages:
// - solo: synchronous Map, MapList, Switch, Validate, Combine, ToItems
// - pending: the same operations over asynchronous computations, plus Catch
// - chain: a fluent wrapper over solo
// - httpx: writes a Result as an HTTP response
package rop
