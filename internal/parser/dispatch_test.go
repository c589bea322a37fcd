package parser

import (
	"testing"
	"time"
)

func TestParseDispatchesByExtension(t *testing.T) {
	tests := []struct {
		fileName string
		wantType string
	}{
		{"deck.pptx", "pptx"},
		{"deck.PPTX", "pptx"},
		{"legacy.ppt", "ppt"},
		{"legacy.PPT", "ppt"},
		{"unknown.bin", "ppt"},
	}
	for _, tt := range tests {
		pres := Parse([]byte("irrelevant"), tt.fileName, 10, time.Now())
		if string(pres.FileType) != tt.wantType {
			t.Errorf("Parse(%q).FileType = %q, want %q", tt.fileName, pres.FileType, tt.wantType)
		}
	}
}

func TestParseNeverReturnsNil(t *testing.T) {
	pres := Parse(nil, "empty.pptx", 0, time.Now())
	if pres == nil {
		t.Fatal("Parse returned nil")
	}
	if len(pres.Slides) < 1 {
		t.Error("expected at least one slide (diagnostic fallback)")
	}
}
