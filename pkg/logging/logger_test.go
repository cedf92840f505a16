package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_ConsoleWithoutColors(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.ComponentWarn(ComponentSink, "insert failed", zap.Int("documents", 1))
	l.ComponentDebug(ComponentSink, "hidden")
	_ = l.Sync()

	out := buf.String()
	if !strings.Contains(out, "[SINK] insert failed") {
		t.Errorf("expected component tag in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no ANSI codes, got %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "debug", Format: "json", Colors: true, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.ComponentInfo(ComponentStore, "connected")
	_ = l.Sync()

	if !strings.Contains(buf.String(), `"msg":"[STORE] connected"`) {
		t.Errorf("unexpected JSON output %q", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWrap_Observer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core))

	l.ComponentError(ComponentFacade, "second registration")

	entries := logs.FilterMessage("[FACADE] second registration").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %v", entries[0].Level)
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.ComponentInfo(ComponentCLI, "discarded")
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
}
