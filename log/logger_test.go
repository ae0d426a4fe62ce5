package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Mode: Prod, Level: "warn", App: "test"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info entry to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "WARN") {
		t.Errorf("Expected warn entry, got %q", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		text    string
		want    Mode
		wantErr bool
	}{
		{"dev", Dev, false},
		{"", Dev, false},
		{"prod", Prod, false},
		{"staging", Dev, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMode(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
