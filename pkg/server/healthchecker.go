package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// CheckFunc adapts a function to HealthChecker.
type CheckFunc func(ctx context.Context) bool

func (f CheckFunc) Healthy(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return f(ctx)
}
