package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitAndLevelString(t *testing.T) {
	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("Error")
	if got := LevelString(); got != "error" {
		t.Fatalf("LevelString() = %q, want %q", got, "error")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
	Init("")
}

func TestLevelFiltering(t *testing.T) {
	Init("warn")
	if L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug entries should be suppressed at warn level")
	}
	if !L().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error entries expected at warn level")
	}
	Init("info")
	if !L().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info entries expected at info level")
	}
}
