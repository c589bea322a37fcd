package legacy

import (
	"testing"
	"time"
)

func TestParseNonCompoundInputReturnsDiagnosticSlide(t *testing.T) {
	noise := make([]byte, 256)
	for i := range noise {
		noise[i] = byte(i * 37)
	}
	pres := Parse(noise, "noise.ppt", int64(len(noise)), time.Now())
	if pres == nil {
		t.Fatal("Parse returned nil")
	}
	if len(pres.Slides) < 1 {
		t.Fatal("expected at least one slide even for unparsable input")
	}
	if pres.Slides[0].SlideNumber != 1 {
		t.Errorf("first slide number = %d, want 1", pres.Slides[0].SlideNumber)
	}
}

func TestParseSlideNumbersAreDenseAndOneBased(t *testing.T) {
	pres := Parse([]byte("not a compound file"), "x.ppt", 20, time.Now())
	for i, s := range pres.Slides {
		if s.SlideNumber != i+1 {
			t.Errorf("slide[%d].SlideNumber = %d, want %d", i, s.SlideNumber, i+1)
		}
	}
}

func TestParseTotalSlidesMatchesSlideCount(t *testing.T) {
	pres := Parse([]byte("garbage"), "x.ppt", 7, time.Now())
	if pres.Metadata.TotalSlides != len(pres.Slides) {
		t.Errorf("Metadata.TotalSlides = %d, want %d", pres.Metadata.TotalSlides, len(pres.Slides))
	}
}

func TestParseAssignsUniqueID(t *testing.T) {
	a := Parse([]byte("garbage"), "x.ppt", 7, time.Now())
	b := Parse([]byte("garbage"), "x.ppt", 7, time.Now())
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected a non-empty id on every extraction")
	}
	if a.ID == b.ID {
		t.Error("expected distinct ids across separate extractions of identical bytes")
	}
}

func TestParseExtractedAtIsFinishTime(t *testing.T) {
	mtime := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now()
	pres := Parse([]byte("garbage"), "x.ppt", 7, mtime)
	after := time.Now()
	if pres.ExtractedAt.Before(before) || pres.ExtractedAt.After(after) {
		t.Errorf("ExtractedAt = %v, want between %v and %v", pres.ExtractedAt, before, after)
	}
	if pres.ExtractedAt.Equal(mtime) {
		t.Error("ExtractedAt should not equal the source file's mtime")
	}
}
