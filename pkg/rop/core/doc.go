// Package core contains the asynchronous plumbing used by package pending:
// Future, a value settled once by a goroutine, and worker options carried in
// a context. It holds no railway logic of its own.
package core
