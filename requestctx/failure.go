package requestctx

import (
	"context"
	"sync"
)

const failureKey contextKey = "failure"

// Failure holds the error a request was answered with, if any
type Failure struct {
	mu  sync.Mutex
	err error
}

// Err returns the recorded error
func (f *Failure) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// WithFailure attaches an empty failure holder to the context
func WithFailure(ctx context.Context) (context.Context, *Failure) {
	f := &Failure{}
	return context.WithValue(ctx, failureKey, f), f
}

// RecordFailure stores err in the context's failure holder.
// It does nothing when the context has no holder.
func RecordFailure(ctx context.Context, err error) {
	f, ok := ctx.Value(failureKey).(*Failure)
	if !ok {
		return
	}
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}
