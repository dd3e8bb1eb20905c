package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFunc(t *testing.T) {
	ok := CheckFunc(func(context.Context) bool { return true })
	assert.True(t, ok.Healthy(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, ok.Healthy(ctx))

	down := CheckFunc(func(context.Context) bool { return false })
	assert.False(t, down.Healthy(context.Background()))
}
