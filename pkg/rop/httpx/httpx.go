package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/pending"
)

// ErrUnsupportedStatus is returned for statuses outside the HTTP table.
var ErrUnsupportedStatus = errors.New("unsupported status")

var codes = map[rop.Status]int{
	rop.Success:         http.StatusOK,
	rop.NotFound:        http.StatusNotFound,
	rop.InvalidArgument: http.StatusBadRequest,
	rop.OperationFailed: http.StatusInternalServerError,
	rop.Conflict:        http.StatusConflict,
}

// StatusCode maps a status to its HTTP code.
func StatusCode(s rop.Status) (int, error) {
	code, ok := codes[s]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedStatus, s)
	}
	return code, nil
}

// Respond writes o as JSON with the code mapped from its status.
func Respond(c echo.Context, o rop.Outcome) error {
	code, err := StatusCode(o.Status())
	if err != nil {
		log.Warn("cannot map outcome", "status", o.Status(), "path", c.Path())
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.JSON(code, o)
}

// RespondPending awaits p with the request context and writes the outcome.
// Thrown errors go to echo's error handler.
func RespondPending[T any](c echo.Context, p *pending.Pending[T]) error {
	return respondAwaited(c, p.Await)
}

// RespondItems is RespondPending for a pending paged collection.
func RespondItems[T any](c echo.Context, p *pending.Items[T]) error {
	return respondAwaited(c, p.Await)
}

func respondAwaited[O rop.Outcome](c echo.Context, await func(context.Context) (O, error)) error {
	o, err := await(c.Request().Context())
	if err != nil {
		var perr *rop.PanicError
		if errors.As(err, &perr) {
			log.Error("pipeline panicked", "path", c.Path(), "panic", perr.Value)
		}
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return Respond(c, o)
}
