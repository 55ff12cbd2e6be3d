// Package mock provides test doubles for giga interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/giga"
)

// Compile-time interface verification.
var (
	_ giga.DiffEngine    = (*DiffEngine)(nil)
	_ giga.DiffRequester = (*DiffRequester)(nil)
)

// DiffEngine is a mock implementation of giga.DiffEngine.
type DiffEngine struct {
	DiffFn func(ctx context.Context, path string, content []byte) (giga.Diff, error)
}

func (e *DiffEngine) Diff(ctx context.Context, path string, content []byte) (giga.Diff, error) {
	return e.DiffFn(ctx, path, content)
}

// DiffRequester records diff requests.
type DiffRequester struct {
	Requests []giga.DiffRequest
}

func (r *DiffRequester) Request(req giga.DiffRequest) {
	r.Requests = append(r.Requests, req)
}
