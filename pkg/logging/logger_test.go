package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/printdex/printdex/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithSource(ctx, "orcaslicer")
	ctx = logging.WithBrand(ctx, "Creality")

	logging.Ctx(ctx).Info().Msg("extracting")

	testLogger.AssertContains(t, "orcaslicer")
	testLogger.AssertContains(t, "Creality")
	testLogger.AssertContains(t, "extracting")
}

func TestRunID(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithRunID(ctx, "run-42")

	if got := logging.RunID(ctx); got != "run-42" {
		t.Errorf("RunID = %q, want %q", got, "run-42")
	}

	logging.Ctx(ctx).Info().Msg("building")
	testLogger.AssertContains(t, "run-42")
}

func TestFromContextFallback(t *testing.T) {
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext should fall back to the default logger")
	}
	if logging.FromContext(nil) == nil { //nolint:staticcheck // nil context fallback is the point
		t.Error("FromContext(nil) should fall back to the default logger")
	}
}
