package giga

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DiffWorker runs a DiffEngine off the editor loop.
//
// Requests never block: a pending request is replaced by a newer one. After
// picking up a request the worker waits for the debounce interval, keeping
// only the newest request, then computes the diff. A computation in flight
// is never restarted; requests arriving meanwhile are served afterwards.
type DiffWorker struct {
	engine   DiffEngine
	debounce time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	requests chan DiffRequest
	results  chan DiffResult
}

// Compile-time interface verification.
var _ DiffRequester = (*DiffWorker)(nil)

// DiffWorkerOption configures a DiffWorker.
type DiffWorkerOption func(*DiffWorker)

// WithDebounce sets how long the worker waits for newer requests.
func WithDebounce(d time.Duration) DiffWorkerOption {
	return func(w *DiffWorker) { w.debounce = d }
}

// WithTimeout bounds a single diff computation.
func WithTimeout(d time.Duration) DiffWorkerOption {
	return func(w *DiffWorker) { w.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) DiffWorkerOption {
	return func(w *DiffWorker) { w.logger = l }
}

// NewDiffWorker creates a worker for engine. Call Run to start it.
func NewDiffWorker(engine DiffEngine, opts ...DiffWorkerOption) *DiffWorker {
	w := &DiffWorker{
		engine:   engine,
		debounce: 250 * time.Millisecond,
		timeout:  5 * time.Second,
		logger:   zap.NewNop(),
		requests: make(chan DiffRequest, 1),
		results:  make(chan DiffResult, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Request schedules a diff, replacing any request still pending.
// It must be called from a single goroutine.
func (w *DiffWorker) Request(req DiffRequest) {
	for {
		select {
		case w.requests <- req:
			return
		default:
		}
		select {
		case <-w.requests:
		default:
		}
	}
}

// Results returns the channel diff results are delivered on.
func (w *DiffWorker) Results() <-chan DiffResult {
	return w.results
}

// Run serves requests until ctx is cancelled.
func (w *DiffWorker) Run(ctx context.Context) error {
	for {
		var req DiffRequest
		select {
		case <-ctx.Done():
			return nil
		case req = <-w.requests:
		}

		req, ok := w.settle(ctx, req)
		if !ok {
			return nil
		}

		start := time.Now()
		dctx, cancel := context.WithTimeout(ctx, w.timeout)
		diff, err := w.engine.Diff(dctx, req.Path, req.Content)
		cancel()
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			w.logger.Warn("diff failed", zap.String("path", req.Path), zap.Uint64("generation", req.Generation), zap.Error(err))
		} else {
			w.logger.Debug("diff computed",
				zap.String("path", req.Path),
				zap.Uint64("generation", req.Generation),
				zap.Int("patches", len(diff)),
				zap.Duration("took", time.Since(start)))
		}

		select {
		case w.results <- DiffResult{Generation: req.Generation, Diff: diff, Err: err}:
		case <-ctx.Done():
			return nil
		}
	}
}

// settle waits out the debounce interval and returns the newest request.
func (w *DiffWorker) settle(ctx context.Context, req DiffRequest) (DiffRequest, bool) {
	if w.debounce <= 0 {
		return req, true
	}
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return req, false
		case newer := <-w.requests:
			req = newer
		case <-timer.C:
			return req, true
		}
	}
}
