package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// DefaultOperationTimeout bounds each request so a stalled storage call
// surfaces as a gateway timeout instead of hanging the caller.
const DefaultOperationTimeout = 5 * time.Second

// OperationTimeout returns middleware that attaches a deadline to every
// request context. Handlers pass that context into the use cases, and the
// storage layer runs its statements under it, so an exceeded deadline aborts
// the transaction and reaches domainError as context.DeadlineExceeded.
func OperationTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx.Request().Context(), timeout)
			defer cancel()

			ctx.SetRequest(ctx.Request().WithContext(timeoutCtx))
			return next(ctx)
		}
	}
}
