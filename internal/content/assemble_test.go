package content

import (
	"testing"

	"github.com/gnemet/slidextract/internal/model"
)

func TestAssembleFromBuckets(t *testing.T) {
	buckets := map[int][]string{
		3: {"Third title", "third body"},
		1: {"First title", "first body"},
	}
	slides := AssembleFromBuckets(buckets)
	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].SlideNumber != 1 || slides[0].Title != "First title" {
		t.Errorf("slide 0 = %+v", slides[0])
	}
	if slides[1].SlideNumber != 2 || slides[1].Title != "Third title" {
		t.Errorf("slide 1 = %+v", slides[1])
	}
}

func TestAssembleFromBucketsEmpty(t *testing.T) {
	if got := AssembleFromBuckets(map[int][]string{}); got != nil {
		t.Errorf("expected nil for empty buckets, got %v", got)
	}
}

func TestAssembleFromBucketsUntitledBucket(t *testing.T) {
	slides := AssembleFromBuckets(map[int][]string{1: {}})
	if len(slides) != 1 || slides[0].Title != "Slide 1" {
		t.Errorf("expected synthesized title, got %+v", slides)
	}
}

func TestAssembleFallback(t *testing.T) {
	texts := []string{"Agenda", "Q3 Results", "Q3 Results"}
	slides := AssembleFallback(texts, 6)
	if len(slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(slides))
	}
	if slides[0].Title != "Agenda" {
		t.Errorf("title = %q, want Agenda", slides[0].Title)
	}
	if len(slides[0].TextContent) != 1 || slides[0].TextContent[0] != "Q3 Results" {
		t.Errorf("text_content = %v", slides[0].TextContent)
	}
}

func TestAssembleFallbackThreshold(t *testing.T) {
	texts := []string{"Title", "a", "b", "c"}
	slides := AssembleFallback(texts, 2)
	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2 (flush after 2 content entries)", len(slides))
	}
	if len(slides[0].TextContent) != 2 {
		t.Errorf("first slide content = %v", slides[0].TextContent)
	}
}

func TestAssembleFallbackEmpty(t *testing.T) {
	if got := AssembleFallback(nil, 0); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestDiagnosticSlide(t *testing.T) {
	s := DiagnosticSlide()
	if s.SlideNumber != 1 || s.Title != "No Content Found" {
		t.Errorf("unexpected diagnostic slide: %+v", s)
	}
}

func TestJoinNotesFiltersNumericPlaceholder(t *testing.T) {
	got := JoinNotes([]string{"Speak softly", "42"})
	want := "Speak softly"
	if got != want {
		t.Errorf("JoinNotes() = %q, want %q", got, want)
	}
}

func TestCountWords(t *testing.T) {
	slides := []model.Slide{
		{Title: "Hello", TextContent: []string{"World"}},
	}
	if got := CountWords(slides); got != 2 {
		t.Errorf("CountWords() = %d, want 2", got)
	}
}
