package telemetry

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/photovault/photovault/internal/server"
)

func TestInit_WithoutExporters(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{
		ServiceName:    "photovault-test",
		ServiceVersion: "test",
	})
	require.NoError(t, err)

	ctx, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().HasTraceID(), "SDK provider must produce real trace ids")
	span.End()

	require.NoError(t, shutdown(ctx))
}

func TestShutdown_RegistersAsServerHook(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{ServiceName: "photovault-test"})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(http.NotFoundHandler(), server.Options{ShutdownTimeout: time.Second}, logger)
	srv.OnShutdown("telemetry", shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
