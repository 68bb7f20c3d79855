package chain

import "context"

// Or returns the first successful chain among c and alternatives. When all of
// them failed, the first failure wins.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	last := c
	for _, r := range required {
		if r.result.IsFailure() {
			return r
		}
		last = r
	}
	return last
}

// DoWhile runs step at least once and repeats it as long as the chain is
// successful and while holds.
func (c *Chain[T]) DoWhile(step func(*Chain[T]) *Chain[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	if c.result.IsFailure() {
		return c
	}
	for {
		c = step(c)
		if c.result.IsFailure() || !while(c.ctx, c.result.Data()) {
			return c
		}
	}
}

// While repeats step as long as the chain is successful and while holds.
func (c *Chain[T]) While(step func(*Chain[T]) *Chain[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Data()) {
		c = step(c)
	}
	return c
}
