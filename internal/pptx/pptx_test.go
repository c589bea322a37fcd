package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"
	"time"
)

// buildZip writes the given name -> content map into an in-memory ZIP
// and returns its bytes.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip.Create(%s): %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write(%s): %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip.Close: %v", err)
	}
	return buf.Bytes()
}

func TestParseHelloWorldSlide(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": helloWorldSlideXML,
	})

	pres := Parse(data, "hello.pptx", int64(len(data)), time.Now())
	if len(pres.Slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(pres.Slides))
	}
	slide := pres.Slides[0]
	if slide.SlideNumber != 1 {
		t.Errorf("SlideNumber = %d, want 1", slide.SlideNumber)
	}
	if slide.Title != "Hello" {
		t.Errorf("Title = %q, want Hello", slide.Title)
	}
	if len(slide.TextContent) != 1 || slide.TextContent[0] != "World" {
		t.Errorf("TextContent = %v, want [World]", slide.TextContent)
	}
	if pres.Metadata.TotalSlides != 1 {
		t.Errorf("TotalSlides = %d, want 1", pres.Metadata.TotalSlides)
	}
	if pres.Metadata.TotalWords != 2 {
		t.Errorf("TotalWords = %d, want 2", pres.Metadata.TotalWords)
	}
}

func TestParseCorruptZipYieldsErrorSlide(t *testing.T) {
	pres := Parse([]byte("not a zip file at all"), "bad.pptx", 21, time.Now())
	if len(pres.Slides) != 1 || pres.Slides[0].Title != "Error" {
		t.Errorf("expected single Error slide, got %+v", pres.Slides)
	}
	if pres.CustomProps["error"] == "" {
		t.Error("expected CustomProps[\"error\"] to be set")
	}
}

func TestParseMediaFromImagePart(t *testing.T) {
	imgBytes := []byte("PNG\x00fakepngdata")
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": helloWorldSlideXML,
		"ppt/media/image1.png":  string(imgBytes),
	})

	pres := Parse(data, "withimg.pptx", int64(len(data)), time.Now())
	if len(pres.Media) != 1 {
		t.Fatalf("got %d media entries, want 1", len(pres.Media))
	}
	m := pres.Media[0]
	if m.Name != "image1.png" || m.Extension != "png" {
		t.Errorf("media = %+v", m)
	}
	decoded, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	if len(decoded) != m.Size {
		t.Errorf("decoded length = %d, want m.Size = %d", len(decoded), m.Size)
	}
}

func TestParseEmptyArchiveYieldsDiagnosticSlide(t *testing.T) {
	data := buildZip(t, map[string]string{})
	pres := Parse(data, "empty.pptx", int64(len(data)), time.Now())
	if len(pres.Slides) != 1 || pres.Slides[0].Title != "No Content Found" {
		t.Errorf("expected diagnostic slide, got %+v", pres.Slides)
	}
}

func TestParseAssignsUniqueID(t *testing.T) {
	data := buildZip(t, map[string]string{"ppt/slides/slide1.xml": helloWorldSlideXML})
	a := Parse(data, "hello.pptx", int64(len(data)), time.Now())
	b := Parse(data, "hello.pptx", int64(len(data)), time.Now())
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected a non-empty id on every extraction")
	}
	if a.ID == b.ID {
		t.Error("expected distinct ids across separate extractions of identical bytes")
	}
}

func TestParseExtractedAtIsFinishTime(t *testing.T) {
	data := buildZip(t, map[string]string{"ppt/slides/slide1.xml": helloWorldSlideXML})
	mtime := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now()
	pres := Parse(data, "hello.pptx", int64(len(data)), mtime)
	after := time.Now()
	if pres.ExtractedAt.Before(before) || pres.ExtractedAt.After(after) {
		t.Errorf("ExtractedAt = %v, want between %v and %v", pres.ExtractedAt, before, after)
	}
	if pres.ExtractedAt.Equal(mtime) {
		t.Error("ExtractedAt should not equal the source file's mtime")
	}
}
