package pptx

import (
	"encoding/xml"
	"io"

	"github.com/gnemet/slidextract/internal/model"
)

// coreProperties mirrors the subset of docProps/core.xml fields spec.md
// §4.B names. Namespace prefixes vary by producer (dc:, cp:, dcterms:);
// matching is by local name only.
type coreProperties struct {
	Title          string `xml:"title"`
	Subject        string `xml:"subject"`
	Creator        string `xml:"creator"`
	Keywords       string `xml:"keywords"`
	Description    string `xml:"description"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Revision       string `xml:"revision"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
	Category       string `xml:"category"`
}

func parseCoreProperties(r io.Reader, meta *model.Metadata) {
	var core coreProperties
	dec := xml.NewDecoder(r)
	dec.Strict = false
	if err := dec.Decode(&core); err != nil {
		return
	}
	meta.Title = core.Title
	meta.Subject = core.Subject
	meta.Creator = core.Creator
	meta.Keywords = core.Keywords
	meta.Description = core.Description
	meta.LastModifiedBy = core.LastModifiedBy
	meta.Revision = core.Revision
	meta.Created = core.Created
	meta.Modified = core.Modified
	meta.Category = core.Category
}

// appProperties mirrors docProps/app.xml's application-identity and
// slide-count fields.
type appProperties struct {
	Application string `xml:"Application"`
	AppVersion  string `xml:"AppVersion"`
	Company     string `xml:"Company"`
	Manager     string `xml:"Manager"`
	Template    string `xml:"Template"`
	Slides      int    `xml:"Slides"`
	Words       int    `xml:"Words"`
	Paragraphs  int    `xml:"Paragraphs"`
}

func parseAppProperties(r io.Reader, meta *model.Metadata) {
	var app appProperties
	dec := xml.NewDecoder(r)
	dec.Strict = false
	if err := dec.Decode(&app); err != nil {
		return
	}
	meta.Application = app.Application
	meta.AppVersion = app.AppVersion
	meta.Company = app.Company
	meta.Manager = app.Manager
	meta.Template = app.Template
	if app.Words > 0 {
		meta.TotalWords = app.Words
	}
	if app.Paragraphs > 0 {
		meta.TotalParagraphs = app.Paragraphs
	}
}

// parseCustomProperties reads docProps/custom.xml's
// <property name="…"><vt:lpwstr>value</vt:lpwstr></property> entries by
// walking tokens, since the value element's tag name varies by VT type.
func parseCustomProperties(r io.Reader) map[string]string {
	result := make(map[string]string)
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var currentName string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "property" {
				currentName = ""
				for _, a := range el.Attr {
					if a.Name.Local == "name" {
						currentName = a.Value
					}
				}
				continue
			}
			isValueTag := el.Name.Local == "lpwstr" || el.Name.Local == "lpstr" ||
				el.Name.Local == "i4" || el.Name.Local == "bool" || el.Name.Local == "filetime"
			if currentName != "" && isValueTag {
				var v string
				if decErr := dec.DecodeElement(&v, &el); decErr == nil {
					result[currentName] = v
				}
				currentName = ""
			}
		case xml.EndElement:
			if el.Name.Local == "property" {
				currentName = ""
			}
		}
	}
	return result
}
