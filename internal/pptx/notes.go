package pptx

import (
	"encoding/xml"
	"io"
)

// extractNotesParagraphs walks a ppt/notesSlides/notesSlide{n}.xml part
// and returns each <a:t> run as a paragraph, in document order. Digit-only
// filtering is applied by the caller via content.JoinNotes.
func extractNotesParagraphs(r io.Reader) []string {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var paragraphs []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "t" {
			continue
		}
		var text string
		if decErr := dec.DecodeElement(&text, &el); decErr == nil {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}
