package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{DebugLevel, zapcore.DebugLevel},
		{"bogus", defaultZapLevel},
	}
	for _, tc := range cases {
		if got := toZapLevel(tc.in); got != tc.want {
			t.Fatalf("toZapLevel(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]string{
		"INFO":      InfoLevel,
		" warning ": WarnLevel,
		"Error":     ErrorLevel,
		"":          "",
	}
	for in, want := range cases {
		if got := normalizeLevel(in); got != want {
			t.Fatalf("normalizeLevel(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestNop_NamedDoesNotPanic(t *testing.T) {
	l := Nop().Named("test")
	l.Infow("hello", "k", "v")
}

func TestNewCore_Formats(t *testing.T) {
	cases := []struct {
		format   string
		wantJSON bool
	}{
		{normalizeFormat("json"), true},
		{normalizeFormat(" JSON "), true},
		{normalizeFormat("console"), false},
		{normalizeFormat(""), false},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		l := &Logger{SugaredLogger: zap.New(newCore(&buf, tc.format, zapcore.InfoLevel)).Sugar()}
		l.Debugw("dropped")
		l.Infow("thaw_planned", "method", "fridge")

		out := buf.String()
		if strings.Contains(out, "dropped") {
			t.Fatalf("debug line written at info level: %q", out)
		}
		if got := strings.HasPrefix(out, "{"); got != tc.wantJSON {
			t.Fatalf("format %q produced %q", tc.format, out)
		}
		if !strings.Contains(out, "fridge") {
			t.Fatalf("field missing from %q", out)
		}
	}
}
