package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/requestctx"
	"github.com/blogem/goodhome/services"
)

// journalWriteTimeout bounds the background write of one record
const journalWriteTimeout = 5 * time.Second

// ErrorJournal records every request answered with a 5xx status
type ErrorJournal struct {
	journal services.JournalService
	logger  zerolog.Logger
	pending sync.WaitGroup
}

// NewErrorJournal creates the journal middleware
func NewErrorJournal(journal services.JournalService, logger zerolog.Logger) *ErrorJournal {
	return &ErrorJournal{journal: journal, logger: logger}
}

// Handler wraps next. Records are written in the background so the
// response is not delayed.
func (j *ErrorJournal) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, failure := requestctx.WithFailure(r.Context())
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := statusOf(ww)
		if status < 500 {
			return
		}

		record := &models.ErrorRecord{
			RequestID: requestctx.GetRequestID(ctx),
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    status,
			UserAgent: r.UserAgent(),
			IPAddress: requestctx.GetRemoteIP(ctx),
		}
		if record.IPAddress == "" {
			record.IPAddress = getIPAddress(r)
		}
		if err := failure.Err(); err != nil {
			record.Message = err.Error()
		}

		j.pending.Add(1)
		go func() {
			defer j.pending.Done()

			writeCtx, cancel := context.WithTimeout(context.Background(), journalWriteTimeout)
			defer cancel()

			if err := j.journal.Record(writeCtx, record); err != nil {
				j.logger.Error().Err(err).Str("request_id", record.RequestID).Msg("failed to journal error")
			}
		}()
	})
}

// Wait blocks until every background write has finished
func (j *ErrorJournal) Wait() {
	j.pending.Wait()
}
