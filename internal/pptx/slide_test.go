package pptx

import (
	"strings"
	"testing"
)

const helloWorldSlideXML = `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
        <p:txBody><a:p><a:r><a:t>Hello</a:t></a:r></a:p></p:txBody>
      </p:sp>
      <p:sp>
        <p:nvSpPr><p:nvPr/></p:nvSpPr>
        <p:txBody><a:p><a:r><a:t>World</a:t></a:r></a:p></p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sld>`

func TestParseSlideXMLTitleAndBody(t *testing.T) {
	out := parseSlideXML(strings.NewReader(helloWorldSlideXML))
	if out.title != "Hello" {
		t.Errorf("title = %q, want Hello", out.title)
	}
	if len(out.texts) != 1 || out.texts[0] != "World" {
		t.Errorf("texts = %v, want [World]", out.texts)
	}
	if len(out.shapes) != 2 {
		t.Errorf("shapes = %d, want 2", len(out.shapes))
	}
}

const tableSlideXML = `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:graphicFrame>
        <a:tbl>
          <a:tr><a:tc><a:txBody><a:p><a:r><a:t>A1</a:t></a:r></a:p></a:txBody></a:tc><a:tc><a:txBody><a:p><a:r><a:t>B1</a:t></a:r></a:p></a:txBody></a:tc></a:tr>
        </a:tbl>
      </p:graphicFrame>
    </p:spTree>
  </p:cSld>
</p:sld>`

func TestParseSlideXMLTable(t *testing.T) {
	out := parseSlideXML(strings.NewReader(tableSlideXML))
	if len(out.tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(out.tables))
	}
	tbl := out.tables[0]
	if tbl.Rows != 1 || tbl.Columns != 2 {
		t.Errorf("table dims = %dx%d, want 1x2", tbl.Rows, tbl.Columns)
	}
	if tbl.Cells[0][0] != "A1" || tbl.Cells[0][1] != "B1" {
		t.Errorf("cells = %v", tbl.Cells)
	}
}
