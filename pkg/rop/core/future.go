package core

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Future is a value computed once by a goroutine and read any number of times.
type Future[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Go starts compute in a new goroutine. A panic inside compute settles the
// Future with a *rop.PanicError.
func Go[V any](ctx context.Context, compute func(ctx context.Context) (V, error)) *Future[V] {
	f := &Future[V]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero V
				f.value, f.err = zero, rop.NewPanicError(r)
			}
		}()

		f.value, f.err = compute(ctx)
	}()

	return f
}

func Resolved[V any](value V) *Future[V] {
	f := &Future[V]{done: make(chan struct{}), value: value}
	close(f.done)
	return f
}

func Rejected[V any](err error) *Future[V] {
	f := &Future[V]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done is closed once the value is settled.
func (f *Future[V]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the value is settled or ctx is done. Giving up on ctx
// does not stop the computation.
func (f *Future[V]) Await(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
