package middleware

import (
	"errors"
	"net/http"

	"letterhead-service/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panicking handler into a 500 "Server error". Aborted
// handlers are re-panicked so net/http can drop the connection.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				requestID, _ := utils.GetRequestIDFromContext(r.Context())
				logger.Error("Handler panicked",
					zap.Any("panic", rec),
					zap.String("request_id", requestID),
					zap.String("route", r.Method+" "+r.URL.Path),
					zap.Stack("stack"),
				)
				utils.ResponseInternalError(w, "Server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
