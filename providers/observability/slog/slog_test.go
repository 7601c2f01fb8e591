package slog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/parley-dev/parley/providers/observability"
)

func newBufferObserver(level slog.Level) (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return New(logger), &buf
}

func TestObserver_New_NilLoggerFallsBackToDefault(t *testing.T) {
	obs := New(nil)
	if obs == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestObserver_StartSpanAndEnd(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)

	_, span := obs.StartSpan(context.Background(), "client.send_message",
		observability.String("llm.model", "gpt-4o-mini"),
	)
	output := buf.String()
	if !strings.Contains(output, "client.send_message") {
		t.Errorf("expected span name in output, got: %s", output)
	}
	if !strings.Contains(output, "span.start") {
		t.Errorf("expected span.start event in output, got: %s", output)
	}

	buf.Reset()
	span.End()
	output = buf.String()
	if !strings.Contains(output, "span.end") {
		t.Errorf("expected span.end event in output, got: %s", output)
	}
	if !strings.Contains(output, "duration") {
		t.Errorf("expected duration in output, got: %s", output)
	}
}

func TestObserver_Span_AttributesAppearAtEnd(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)

	_, span := obs.StartSpan(context.Background(), "test-span")
	span.SetAttributes(observability.Int("llm.tokens.total", 15))
	span.SetStatus(observability.StatusOK, "success")
	buf.Reset()

	span.End()

	output := buf.String()
	if !strings.Contains(output, "llm.tokens.total") {
		t.Errorf("expected token attribute in output, got: %s", output)
	}
	if !strings.Contains(output, "status=ok") {
		t.Errorf("expected ok status in output, got: %s", output)
	}
}

func TestObserver_Span_RecordError(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelError)

	_, span := obs.StartSpan(context.Background(), "test-span")
	span.RecordError(errors.New("upstream unavailable"))

	output := buf.String()
	if !strings.Contains(output, "upstream unavailable") {
		t.Errorf("expected error message in output, got: %s", output)
	}
}

func TestObserver_Span_RecordErrorNilIsNoop(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelError)

	_, span := obs.StartSpan(context.Background(), "test-span")
	span.RecordError(nil)

	if output := buf.String(); output != "" {
		t.Errorf("expected no output for nil error, got: %s", output)
	}
}

func TestObserver_Counter_Accumulates(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)
	ctx := context.Background()

	counter := obs.Counter("parley.client.request.count")
	counter.Add(ctx, 10)
	counter.Add(ctx, 5)
	counter.Add(ctx, 3)

	output := buf.String()
	if !strings.Contains(output, "value=18") {
		t.Errorf("expected accumulated value 18 in output, got: %s", output)
	}
}

func TestObserver_Counter_SameNameSharesState(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)
	ctx := context.Background()

	obs.Counter("shared").Add(ctx, 7)
	obs.Counter("shared").Add(ctx, 2)

	output := buf.String()
	if !strings.Contains(output, "value=9") {
		t.Errorf("expected shared counter to reach 9, got: %s", output)
	}
}

func TestObserver_Histogram_RecordsValue(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)

	obs.Histogram("parley.client.request.duration").Record(context.Background(), 1.23)

	output := buf.String()
	if !strings.Contains(output, "histogram") {
		t.Errorf("expected histogram type in output, got: %s", output)
	}
	if !strings.Contains(output, "1.23") {
		t.Errorf("expected value 1.23 in output, got: %s", output)
	}
}

func TestObserver_Logging_FiltersByLevel(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelInfo)
	ctx := context.Background()

	obs.Debug(ctx, "debug message")
	obs.Info(ctx, "info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("debug message should be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "info message") {
		t.Errorf("info message should be present, got: %s", output)
	}
}

func TestObserver_ConcurrentAccess(t *testing.T) {
	obs, buf := newBufferObserver(slog.LevelDebug)
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func(id int) {
			_, span := obs.StartSpan(ctx, "concurrent-span")
			span.SetAttributes(observability.Int("id", id))
			span.End()

			obs.Counter("concurrent-counter").Add(ctx, 1)
			obs.Histogram("concurrent-histogram").Record(ctx, float64(id))
			obs.Info(ctx, "concurrent message", observability.Int("id", id))

			done <- true
		}(i)
	}

	for i := 0; i < 100; i++ {
		<-done
	}

	if buf.Len() == 0 {
		t.Error("expected some output from concurrent operations")
	}
}

func BenchmarkObserver_StartSpan(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	obs := New(logger)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := obs.StartSpan(ctx, "test-span")
		span.End()
	}
}
