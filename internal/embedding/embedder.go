// Package embedding wraps the remote embedding service.
package embedding

import "context"

// Embedder converts text into a fixed-dimension vector. The dimension is
// decided by the service and opaque to callers. Errors are returned, never
// panicked, so a single failed item can be skipped.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
