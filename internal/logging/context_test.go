package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	logger := New("debug")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Fallbacks(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), FromContext(context.Background()))
	assert.Same(t, Default(), FromContext(nil)) //nolint:staticcheck // nil fallback is the point
	assert.Same(t, Default(), FromContext(WithLogger(context.Background(), nil)))
}
