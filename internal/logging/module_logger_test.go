package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "filters.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = FormatLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != formatModule {
		t.Fatalf("expected module %s, got %v", formatModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != formatModule {
		t.Fatalf("expected module field %s, got %v", formatModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestWithFilterContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithFilterContext(rec, "basic_html", " ", "en")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldFormat] != "basic_html" || fields[fieldLangcode] != "en" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if _, ok := fields[fieldFilter]; ok {
		t.Fatalf("expected empty filter to be skipped, got %v", fields)
	}
}

func TestContextFieldsMergeAndCopy(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "a"})
	ctx = ContextWithFields(ctx, map[string]any{"format": "basic_html"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "a" || fields["format"] != "basic_html" {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["request_id"] = "mutated"
	if again := ContextFields(ctx); again["request_id"] != "a" {
		t.Fatalf("expected context fields to be copied, got %v", again)
	}
}

func TestFromContextAppliesContextFields(t *testing.T) {
	rec := &recordingLogger{}
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "a"})

	_ = FromContext(ctx, rec)

	if len(rec.contexts) != 1 {
		t.Fatalf("expected context propagation, got %d", len(rec.contexts))
	}
	if len(rec.fields) != 1 || rec.fields[0]["request_id"] != "a" {
		t.Fatalf("expected request_id field, got %v", rec.fields)
	}
}
