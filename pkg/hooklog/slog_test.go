package hooklog_test

import (
	"context"
	"log/slog"
	"testing"

	htesting "github.com/wayneeseguin/hooklog/internal/testing"
	"github.com/wayneeseguin/hooklog/pkg/hooklog"
)

func TestFromSlogLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want hooklog.Level
	}{
		{slog.LevelDebug - 4, hooklog.LevelTrace},
		{slog.LevelDebug, hooklog.LevelDebug},
		{slog.LevelDebug + 2, hooklog.LevelDebug},
		{slog.LevelInfo, hooklog.LevelInfo},
		{slog.LevelWarn, hooklog.LevelWarn},
		{slog.LevelError, hooklog.LevelError},
		{slog.LevelError + 8, hooklog.LevelError},
	}
	for _, tt := range tests {
		if got := hooklog.FromSlogLevel(tt.in); got != tt.want {
			t.Errorf("FromSlogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHandlerFilters(t *testing.T) {
	rec := htesting.NewRecorder()
	l := hooklog.New().
		GlobalLevel(hooklog.LevelInfo).
		Level("billing", hooklog.LevelWarn).
		RawFn(rec.Func()).
		Build()

	log := slog.New(hooklog.NewHandler(l, "app"))

	log.Debug("dropped by global level")
	log.Info("kept", "user", 42)
	log.With(hooklog.TargetKey, "billing").Info("dropped by module filter")
	log.With(hooklog.TargetKey, "billing").Warn("kept")

	records := rec.Records()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(records), rec.Messages())
	}
	if records[0].Target != "app" || records[0].Message() != "kept" {
		t.Errorf("record 0 = %s", records[0].String())
	}
	if len(records[0].Attrs) != 1 || records[0].Attrs[0].Key != "user" {
		t.Errorf("record 0 attrs = %v", records[0].Attrs)
	}
	if records[1].Target != "billing" || records[1].Level != hooklog.LevelWarn {
		t.Errorf("record 1 = %s", records[1].String())
	}
}

func TestHandlerRecordTargetAttr(t *testing.T) {
	rec := htesting.NewRecorder()
	l := hooklog.New().
		Level("quiet", hooklog.LevelOff).
		RawFn(rec.Func()).
		Build()

	log := slog.New(hooklog.NewHandler(l, "app"))
	log.Info("rerouted and dropped", hooklog.TargetKey, "quiet")
	log.Info("rerouted", hooklog.TargetKey, "loud")

	records := rec.Records()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Target != "loud" {
		t.Errorf("target = %q, want loud", records[0].Target)
	}
	if len(records[0].Attrs) != 0 {
		t.Errorf("target attr leaked into attrs: %v", records[0].Attrs)
	}
}

func TestHandlerRecordTargetMoreVerbose(t *testing.T) {
	rec := htesting.NewRecorder()
	l := hooklog.New().
		GlobalLevel(hooklog.LevelWarn).
		Level("db", hooklog.LevelDebug).
		RawFn(rec.Func()).
		Build()

	log := slog.New(hooklog.NewHandler(l, "app"))
	log.Debug("per-record", hooklog.TargetKey, "db")
	log.Debug("dropped by global level")
	log.With(hooklog.TargetKey, "db").Debug("with")

	records := rec.Records()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(records), rec.Messages())
	}
	for i, want := range []string{"per-record", "with"} {
		if records[i].Target != "db" || records[i].Message() != want {
			t.Errorf("record %d = %s, want db %s", i, records[i].String(), want)
		}
	}
}

func TestHandlerGroups(t *testing.T) {
	rec := htesting.NewRecorder()
	l := hooklog.New().RawFn(rec.Func()).Build()

	log := slog.New(hooklog.NewHandler(l, "app")).
		With("service", "api").
		WithGroup("req").
		With("id", "abc")
	log.Info("handled", "status", 200)

	records := rec.Records()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	attrs := records[0].Attrs
	if len(attrs) != 2 {
		t.Fatalf("attrs = %v, want service and req", attrs)
	}
	if attrs[0].Key != "service" {
		t.Errorf("attrs[0] = %v", attrs[0])
	}
	if attrs[1].Key != "req" || attrs[1].Value.Kind() != slog.KindGroup {
		t.Fatalf("attrs[1] = %v, want group req", attrs[1])
	}
	group := attrs[1].Value.Group()
	if len(group) != 2 || group[0].Key != "id" || group[1].Key != "status" {
		t.Errorf("req = %v, want req{id,status}", group)
	}
}

func TestHandlerEmptyGroupOmitted(t *testing.T) {
	rec := htesting.NewRecorder()
	l := hooklog.New().RawFn(rec.Func()).Build()

	log := slog.New(hooklog.NewHandler(l, "app")).With("service", "api").WithGroup("req")
	log.Info("no attrs")

	records := rec.Records()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if attrs := records[0].Attrs; len(attrs) != 1 || attrs[0].Key != "service" {
		t.Errorf("attrs = %v, want only service", attrs)
	}
}

func TestHandlerEnabled(t *testing.T) {
	l := hooklog.New().GlobalLevel(hooklog.LevelWarn).Build()
	h := hooklog.NewHandler(l, "app")

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(Info) = true with warn global level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled(Error) = false")
	}
	if !hooklog.NewHandler(hooklog.New().
		GlobalLevel(hooklog.LevelWarn).
		Level("db", hooklog.LevelDebug).
		Build(), "app").Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(Debug) = false although db allows debug")
	}
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestHandlerDispatchesPerLevel(t *testing.T) {
	info, warn := htesting.NewRecorder(), htesting.NewRecorder()
	l := hooklog.New().
		LogFn(hooklog.LevelInfo, info.Func()).
		LogFn(hooklog.LevelWarn, warn.Func()).
		Build()

	log := slog.New(hooklog.NewHandler(l, "app"))
	log.Info("a")
	log.Warn("b")
	log.Warn("c")

	if info.Count() != 1 || warn.Count() != 2 {
		t.Errorf("info=%d warn=%d, want 1 and 2", info.Count(), warn.Count())
	}
}
