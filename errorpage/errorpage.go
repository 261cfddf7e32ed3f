// Package errorpage writes the HTML documents served when a request ends in
// an error: handler failures, unmatched routes and disallowed methods.
package errorpage

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/blogem/goodhome/requestctx"
)

// HTTPError carries the status code a failure should be answered with
type HTTPError struct {
	Status int
	Err    error
}

// NewHTTPError wraps err with an HTTP status
func NewHTTPError(status int, err error) *HTTPError {
	return &HTTPError{Status: status, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusOf returns the status an error should be answered with.
// Anything that is not an HTTPError with a 4xx/5xx status is a 500.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status >= 400 && httpErr.Status <= 599 {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

// Responder answers failed requests with an HTML error document.
// The zero value behaves as in development and logs nowhere.
type Responder struct {
	// Env selects how much detail the page shows; "production" hides
	// error messages behind the status text.
	Env    string
	Logger zerolog.Logger
}

// NewResponder creates a responder for the given environment
func NewResponder(env string, logger zerolog.Logger) *Responder {
	return &Responder{Env: env, Logger: logger}
}

// Error writes the error document for err
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	requestctx.RecordFailure(r.Context(), err)

	if status >= 500 {
		rs.logger().Error().
			Err(err).
			Str("request_id", requestctx.GetRequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("request failed")
	}

	rs.write(w, r, status, rs.message(err, status))
}

// NotFound answers requests no route matched
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.write(w, r, http.StatusNotFound, cannotMessage(r))
}

// MethodNotAllowed answers requests whose path matched but method did not
func (rs *Responder) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	rs.write(w, r, http.StatusMethodNotAllowed, cannotMessage(r))
}

func (rs *Responder) logger() *zerolog.Logger {
	if rs == nil {
		l := zerolog.Nop()
		return &l
	}
	return &rs.Logger
}

func (rs *Responder) message(err error, status int) string {
	if rs != nil && rs.Env == "production" {
		return http.StatusText(status)
	}
	if err == nil {
		return http.StatusText(status)
	}
	return err.Error()
}

func (rs *Responder) write(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := Document(message)

	h := w.Header()
	h.Del("Content-Encoding")
	h.Del("Content-Language")
	h.Del("Content-Range")
	h.Set("Content-Security-Policy", "default-src 'none'")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(body))
}

func cannotMessage(r *http.Request) string {
	return fmt.Sprintf("Cannot %s %s", r.Method, r.URL.EscapedPath())
}

// Document renders the error page around message.
// The message is escaped, newlines become <br> and space runs are kept.
func Document(message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "  ", " &nbsp;")

	return "<!DOCTYPE html>\n" +
		"<html lang=\"en\">\n" +
		"<head>\n" +
		"<meta charset=\"utf-8\">\n" +
		"<title>Error</title>\n" +
		"</head>\n" +
		"<body>\n" +
		"<pre>" + escaped + "</pre>\n" +
		"</body>\n" +
		"</html>\n"
}
