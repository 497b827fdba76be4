package media

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWriter_RejectsOddDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"odd width", 425, 320},
		{"odd height", 426, 321},
		{"zero width", 0, 320},
		{"negative height", 426, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.mp4")
			if _, err := NewWriter(out, tt.w, tt.h, 30); err == nil {
				t.Errorf("NewWriter(%dx%d) succeeded, want error", tt.w, tt.h)
			}
		})
	}
}

func TestNewReader_RejectsInvalidSize(t *testing.T) {
	if _, err := NewReader("missing.mp4", 0, 275); err == nil {
		t.Error("NewReader with zero width succeeded, want error")
	}
	if _, err := NewReader("missing.mp4", 512, -1); err == nil {
		t.Error("NewReader with negative height succeeded, want error")
	}
}

func TestStderrTail(t *testing.T) {
	var empty bytes.Buffer
	if got := stderrTail(&empty); got != "no ffmpeg output" {
		t.Errorf("empty tail = %q", got)
	}

	var many bytes.Buffer
	many.WriteString("a\nb\nc\nd\ne\nf\ng\n")
	got := stderrTail(&many)
	if strings.Contains(got, "a") || !strings.Contains(got, "g") {
		t.Errorf("tail = %q, want only the last lines", got)
	}
}

func TestWriterClose_NilSafe(t *testing.T) {
	w := &Writer{}
	if err := w.Close(); err != nil {
		t.Errorf("Close on unopened writer = %v", err)
	}
}

func TestReaderClose_NilSafe(t *testing.T) {
	r := &Reader{}
	if err := r.Close(); err != nil {
		t.Errorf("Close on unopened reader = %v", err)
	}
}
