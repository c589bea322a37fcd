package pptx

import (
	"testing"
	"time"
)

const notesXML = `<?xml version="1.0" encoding="UTF-8"?>
<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
         xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:sp><p:txBody><a:p><a:r><a:t>Speak softly</a:t></a:r></a:p></p:txBody></p:sp>
      <p:sp><p:txBody><a:p><a:r><a:t>42</a:t></a:r></a:p></p:txBody></p:sp>
    </p:spTree>
  </p:cSld>
</p:notes>`

func TestParseFiltersNumericNotesPlaceholder(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml":              helloWorldSlideXML,
		"ppt/slides/slide2.xml":              helloWorldSlideXML,
		"ppt/slides/slide3.xml":              helloWorldSlideXML,
		"ppt/notesSlides/notesSlide2.xml": notesXML,
	})

	pres := Parse(data, "notes.pptx", int64(len(data)), time.Now())
	if len(pres.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(pres.Slides))
	}
	if pres.Slides[1].Notes != "Speak softly" {
		t.Errorf("slides[1].Notes = %q, want %q", pres.Slides[1].Notes, "Speak softly")
	}
}
