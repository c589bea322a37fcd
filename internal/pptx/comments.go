package pptx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gnemet/slidextract/internal/model"
)

// commentAuthors reads ppt/commentAuthors.xml into an id->name map.
// Adapted from the teacher's ExtractAuthors to operate on an
// already-open zip.Reader.
func commentAuthors(zr *zip.Reader) map[string]string {
	authors := make(map[string]string)
	f := findFile(zr, "ppt/commentAuthors.xml")
	if f == nil {
		return authors
	}
	rc, err := f.Open()
	if err != nil {
		return authors
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "cmAuthor" {
			continue
		}
		var id, name string
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "id":
				id = a.Value
			case "name":
				name = a.Value
			}
		}
		if id != "" {
			authors[id] = name
		}
	}
	return authors
}

// commentsForSlide resolves ppt/slides/_rels/slide{n}.xml.rels to its
// comments part and parses that part's <cm> entries, adapted from the
// teacher's ExtractCommentsForSlide.
func commentsForSlide(zr *zip.Reader, slideNum int, authors map[string]string) []model.Comment {
	relsFile := findFile(zr, "ppt/slides/_rels/slide"+itoa(slideNum)+".xml.rels")
	if relsFile == nil {
		return nil
	}

	commentPart := resolveCommentsTarget(relsFile)
	if commentPart == "" {
		return nil
	}

	f := findFile(zr, commentPart)
	if f == nil {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	return parseCommentPart(rc, authors)
}

func resolveCommentsTarget(relsFile *zip.File) string {
	rc, err := relsFile.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "Relationship" {
			continue
		}
		var target, relType string
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "Target":
				target = a.Value
			case "Type":
				relType = a.Value
			}
		}
		if strings.HasSuffix(relType, "comments") {
			return path.Clean(path.Join("ppt", "slides", target))
		}
	}
	return ""
}

func parseCommentPart(r io.Reader, authors map[string]string) []model.Comment {
	var comments []model.Comment
	dec := xml.NewDecoder(r)
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "cm" {
			continue
		}

		var authorID, dateStr string
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "authorId":
				authorID = a.Value
			case "dt":
				dateStr = a.Value
			}
		}

		var text string
	innerLoop:
		for {
			innerTok, err := dec.Token()
			if err != nil {
				break
			}
			switch inner := innerTok.(type) {
			case xml.StartElement:
				if inner.Name.Local == "text" {
					var t string
					if decErr := dec.DecodeElement(&t, &inner); decErr == nil {
						text = t
					}
				}
			case xml.EndElement:
				if inner.Name.Local == "cm" {
					break innerLoop
				}
			}
		}

		authorName := authors[authorID]
		if authorName == "" {
			authorName = "Unknown"
		}
		var date time.Time
		if dateStr != "" {
			date, _ = time.Parse("2006-01-02T15:04:05.000", dateStr)
		}
		comments = append(comments, model.Comment{Author: authorName, Text: text, Date: date})
	}
	return comments
}
