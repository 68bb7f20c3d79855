package rop

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ValidationError is returned by AsValidData when a Result is not successful.
type ValidationError struct {
	Status   Status
	Messages []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("Validation failed with status ")
	b.WriteString(e.Status.String())
	b.WriteString(".")
	if len(e.Messages) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(e.Messages, ". "))
		b.WriteString(".")
	}
	return b.String()
}

// PanicError wraps a value recovered from a panicking asynchronous step.
type PanicError struct {
	Value any
	Stack []byte
}

func NewPanicError(value any) *PanicError {
	return &PanicError{Value: value, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the recovered value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// AsValidData unwraps the data of a successful Result. Any other status
// yields a *ValidationError carrying the status and messages.
func AsValidData[T any](r Result[T]) (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, &ValidationError{Status: r.status, Messages: r.Messages()}
	}
	return r.data, nil
}

// MustValidData is like AsValidData but panics with the *ValidationError.
func MustValidData[T any](r Result[T]) T {
	data, err := AsValidData(r)
	if err != nil {
		panic(err)
	}
	return data
}
