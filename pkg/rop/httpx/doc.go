// Package httpx writes railway outcomes as echo responses.
//
// Highlights:
// - StatusCode: fixed status to HTTP code table (200/404/400/500/409)
// - Respond: JSON body in the rop serialized shape, code from the status
// - RespondPending/RespondItems: await with the request context, thrown errors
//   are handed to echo's HTTP error handler
package httpx
