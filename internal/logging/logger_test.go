package logging

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/astro"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if _, err := NewLogger("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestReadingFields(t *testing.T) {
	pos := astro.Position{Degrees: 3, Minutes: 1, Seconds: 52.5, Sign: zodiac.Aries}
	r, err := analysis.NewAnalyzer(nil, analysis.DefaultConfig()).Analyze(analysis.Input{Position: &pos, At: time.Now()})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("reading", ReadingFields(r)...)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["coordinate"] != "25.4.2.3.3" {
		t.Errorf("coordinate field = %v", fields["coordinate"])
	}
	if fields["primary"] != "Movement" {
		t.Errorf("primary field = %v", fields["primary"])
	}
}
