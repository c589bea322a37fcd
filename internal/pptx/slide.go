package pptx

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/gnemet/slidextract/internal/model"
)

// slideContent is the intermediate result of walking one slide's XML
// part, before content.Sanitize/IsValidText filtering is applied by the
// caller.
type slideContent struct {
	title  string
	texts  []string
	shapes []model.Shape
	tables []model.Table
	images []model.Media
}

// parseSlideXML walks a ppt/slides/slide{n}.xml part using local-name
// matching only (namespace prefixes a:/p:/r: vary by producer), per
// spec.md §4.B. Grounded on the teacher's parseSlideXML token-loop
// shape, generalized to also collect table and picture nodes and to
// separate title extraction from body text.
func parseSlideXML(r io.Reader) slideContent {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var out slideContent
	var titleBuilder strings.Builder
	var firstRun string

	var shapeStack []*model.Shape
	var isTitleShape []bool
	var inTable bool
	var table *model.Table
	var row []string
	var cellBuilder strings.Builder
	var runBuilder strings.Builder
	var shapeBuilder strings.Builder

	flushShape := func() {
		if len(shapeStack) == 0 {
			return
		}
		sh := shapeStack[len(shapeStack)-1]
		shapeStack = shapeStack[:len(shapeStack)-1]
		isTitleShape = isTitleShape[:len(isTitleShape)-1]
		sh.Text = strings.TrimSpace(shapeBuilder.String())
		shapeBuilder.Reset()
		if sh.Text != "" {
			out.shapes = append(out.shapes, *sh)
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "ph":
				if len(shapeStack) == 0 {
					continue
				}
				for _, a := range el.Attr {
					if a.Name.Local != "type" {
						continue
					}
					shapeStack[len(shapeStack)-1].Type = a.Value
					isTitleShape[len(isTitleShape)-1] = a.Value == "title" || a.Value == "ctrTitle"
				}
			case "sp", "pic", "graphicFrame":
				shapeStack = append(shapeStack, &model.Shape{Type: "Shape"})
				isTitleShape = append(isTitleShape, false)
			case "tbl":
				inTable = true
				table = &model.Table{}
			case "tr":
				row = nil
			case "tc":
				cellBuilder.Reset()
			case "blip":
				for _, a := range el.Attr {
					if a.Name.Local == "embed" || a.Name.Local == "id" || a.Name.Local == "link" {
						out.images = append(out.images, model.Media{
							Name: "Image reference: " + a.Value,
							Type: model.MediaImage,
						})
					}
				}
			case "t":
				var text string
				if decErr := dec.DecodeElement(&text, &el); decErr == nil {
					if inTable {
						cellBuilder.WriteString(text)
						continue
					}
					runBuilder.WriteString(text)
					if len(shapeStack) > 0 {
						shapeBuilder.WriteString(text)
						if isTitleShape[len(isTitleShape)-1] {
							titleBuilder.WriteString(text)
						}
					}
					if firstRun == "" {
						firstRun = text
					}
				}
			}

		case xml.EndElement:
			switch el.Name.Local {
			case "sp", "pic", "graphicFrame":
				flushShape()
			case "p":
				isTitleParagraph := len(shapeStack) > 0 && isTitleShape[len(isTitleShape)-1]
				if !inTable && !isTitleParagraph && runBuilder.Len() > 0 {
					out.texts = append(out.texts, runBuilder.String())
				}
				runBuilder.Reset()
			case "tc":
				row = append(row, strings.TrimSpace(cellBuilder.String()))
			case "tr":
				if table != nil {
					table.Cells = append(table.Cells, row)
				}
			case "tbl":
				if table != nil {
					table.Rows = len(table.Cells)
					if table.Rows > 0 {
						table.Columns = len(table.Cells[0])
					}
					out.tables = append(out.tables, *table)
				}
				inTable = false
				table = nil
			}
		}
	}

	if titleBuilder.Len() > 0 {
		out.title = titleBuilder.String()
	} else {
		out.title = firstRun
	}
	return out
}
