package rop

import "slices"

// Result is an immutable outcome: data plus a status and optional messages.
// A nil messages slice means no message was ever attached.
type Result[T any] struct {
	data     T
	status   Status
	messages []string
}

// New builds a Result from its parts. The messages slice is copied.
func New[T any](data T, status Status, messages []string) Result[T] {
	return Result[T]{
		data:     data,
		status:   status,
		messages: slices.Clone(messages),
	}
}

func Create[T any](data T) Result[T] {
	return Result[T]{data: data, status: Success}
}

// CreateWithMessage returns a successful Result annotated with one message.
func CreateWithMessage[T any](data T, message string) Result[T] {
	return Result[T]{data: data, status: Success, messages: []string{message}}
}

// CreateWithError returns a failed Result with zero data. Passing Success is a
// caller error and yields a successful Result carrying the messages.
func CreateWithError[T any](status Status, messages ...string) Result[T] {
	var zero T
	return New(zero, status, messages)
}

// Validate returns Create(true) when condition holds, otherwise a failed
// Result[bool] with the given status and message.
func Validate(condition bool, status Status, message string) Result[bool] {
	if condition {
		return Create(true)
	}
	return CreateWithError[bool](status, message)
}

// FailFrom carries the status and messages of from into a Result of another
// type with zero data.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	var zero Out
	return To(from, zero)
}

// To carries the status and messages of from into a Result holding defaultValue.
func To[In, Out any](from Result[In], defaultValue Out) Result[Out] {
	return Result[Out]{
		data:     defaultValue,
		status:   from.status,
		messages: from.messages,
	}
}

// WithMessage returns a copy of r with status replaced and message appended.
// The receiver is left untouched.
func (r Result[T]) WithMessage(status Status, message string) Result[T] {
	messages := make([]string, 0, len(r.messages)+1)
	messages = append(messages, r.messages...)
	messages = append(messages, message)
	return Result[T]{data: r.data, status: status, messages: messages}
}

func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Status() Status {
	return r.status
}

// Messages returns a copy of the attached messages, nil when there are none.
func (r Result[T]) Messages() []string {
	return slices.Clone(r.messages)
}

func (r Result[T]) HasMessages() bool {
	return r.messages != nil
}

func (r Result[T]) IsSuccess() bool {
	return r.status == Success
}

func (r Result[T]) IsFailure() bool {
	return r.status != Success
}
