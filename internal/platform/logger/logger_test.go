package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCriticalTagsSeverity(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Critical("store unreachable", "error", "dial tcp: refused")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: want=1 got=%d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("level: want=%s got=%s", zapcore.ErrorLevel, entries[0].Level)
	}
	if got := entries[0].ContextMap()["severity"]; got != SeverityCritical {
		t.Fatalf("severity: want=%q got=%v", SeverityCritical, got)
	}
}

func TestRedactorMasksAndHashes(t *testing.T) {
	r := redactor{enabled: true, salt: "pepper"}

	got, ok := r.value("created_by_user_id", "5d1f7c2e-0000-4000-8000-000000000001").(string)
	if !ok || len(got) != len("hash:")+12 || got[:5] != "hash:" {
		t.Fatalf("expected hashed value, got %v", got)
	}
	if again := r.value("updated_by_user_id", "5d1f7c2e-0000-4000-8000-000000000001"); again != got {
		t.Fatalf("hash not stable: %v vs %v", again, got)
	}
	if r.value("postgres_password", "pw") != "[REDACTED]" {
		t.Fatalf("expected password to be redacted")
	}
	if r.value("name", "widget") != "widget" {
		t.Fatalf("expected plain value to pass through")
	}
}

func TestRedactorDisabledPassesThrough(t *testing.T) {
	t.Setenv("LOG_REDACTION_ENABLED", "false")
	core, logs := observer.New(zapcore.DebugLevel)
	FromZap(zap.New(core)).Info("connect", "dsn", "postgres://u:p@h/db")

	if got := logs.All()[0].ContextMap()["dsn"]; got != "postgres://u:p@h/db" {
		t.Fatalf("dsn: want raw value, got %v", got)
	}
}
