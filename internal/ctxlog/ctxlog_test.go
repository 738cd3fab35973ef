package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/bjaus/table2md/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := ctxlog.New(&buf, true)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Debug("decoded", "rows", 3)
	assert.Contains(t, buf.String(), "msg=decoded rows=3")
}

func TestFromContextDefault(t *testing.T) {
	t.Parallel()
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestNewLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctxlog.New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())
}
