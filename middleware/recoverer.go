package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/blogem/goodhome/errorpage"
	"github.com/blogem/goodhome/requestctx"
)

// Recoverer turns handler panics into an HTML 500 page
func Recoverer(responder *errorpage.Responder, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// the server aborts the response on purpose
					panic(rvr)
				}

				logger.Error().
					Str("request_id", requestctx.GetRequestID(r.Context())).
					Interface("panic", rvr).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				if r.Header.Get("Connection") != "Upgrade" {
					responder.Error(w, r, fmt.Errorf("panic: %v", rvr))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
