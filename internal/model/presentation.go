// Package model defines the normalized presentation record produced by
// both the PPTX and legacy PPT parsers.
package model

import "time"

// FileType identifies the source container format.
type FileType string

const (
	FileTypePPT  FileType = "ppt"
	FileTypePPTX FileType = "pptx"
)

// MediaType categorizes a Media blip by its MIME-type prefix.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaAudio   MediaType = "audio"
	MediaUnknown MediaType = "unknown"
)

// Presentation is the root entity produced by either parser. It is
// immutable once constructed and does not reference the source bytes.
type Presentation struct {
	ID           string         `json:"id"`
	FileName     string         `json:"file_name"`
	FileSize     int64          `json:"file_size"`
	FileType     FileType       `json:"file_type"`
	ExtractedAt  time.Time      `json:"extracted_at"`
	Metadata     Metadata       `json:"metadata"`
	Slides       []Slide        `json:"slides"`
	Media        []Media        `json:"media"`
	Themes       []Theme        `json:"themes"`
	MasterSlides []string       `json:"master_slides"`
	CustomProps  map[string]string `json:"custom_properties"`

	// Placeholders is the ordered set of distinct {{tag}} strings found
	// across all slide XML parts (PPTX only; supplements spec.md §3).
	Placeholders []string `json:"placeholders,omitempty"`
}

// Metadata holds document-property fields. All string fields are
// optional; numeric counts default to zero.
type Metadata struct {
	Title              string `json:"title"`
	Subject            string `json:"subject"`
	Creator            string `json:"creator"`
	LastModifiedBy     string `json:"last_modified_by"`
	Created            string `json:"created"`
	Modified           string `json:"modified"`
	Revision           string `json:"revision"`
	Category           string `json:"category"`
	Keywords           string `json:"keywords"`
	Description        string `json:"description"`
	Application        string `json:"application"`
	AppVersion         string `json:"app_version"`
	Company            string `json:"company"`
	Manager            string `json:"manager"`
	Template           string `json:"template"`
	PresentationFormat string `json:"presentation_format"`
	TotalSlides        int    `json:"total_slides"`
	TotalWords         int    `json:"total_words"`
	TotalParagraphs    int    `json:"total_paragraphs"`
}

// Slide is one position in the presentation, 1-based and monotonic.
type Slide struct {
	SlideNumber int       `json:"slide_number"`
	Title       string    `json:"title"`
	TextContent []string  `json:"text_content"`
	Notes       string    `json:"notes"`
	Shapes      []Shape   `json:"shapes"`
	Images      []Media   `json:"images"`
	Tables      []Table   `json:"tables"`
	Comments    []Comment `json:"comments,omitempty"`
}

// Shape is a coarse shape/text-box summary; geometry is best-effort.
type Shape struct {
	Type     string    `json:"type"`
	Text     string    `json:"text"`
	Position *Position `json:"position,omitempty"`
	Size     *Size     `json:"size,omitempty"`
}

// Position and Size are expressed in EMUs when known.
type Position struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

type Size struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Table is a rectangular grid of cell text.
type Table struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   [][]string `json:"cells"`
}

// Media is a collected blip (image, video, or audio payload).
type Media struct {
	Name      string    `json:"name"`
	Type      MediaType `json:"type"`
	Size      int       `json:"size"`
	Extension string    `json:"extension"`
	Data      string    `json:"data,omitempty"`
}

// Theme captures a PPTX theme's color scheme and font pairing.
type Theme struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Fonts  []string `json:"fonts"`
}

// Comment is a PPTX reviewer comment attached to a slide.
type Comment struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date,omitempty"`
}

// MediaTypeForExtension classifies a lowercased file extension (without
// the leading dot) into a MediaType by its conventional MIME prefix.
func MediaTypeForExtension(ext string) MediaType {
	switch ext {
	case "jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp":
		return MediaImage
	case "mp4", "avi", "mov", "wmv", "webm":
		return MediaVideo
	case "mp3", "wav", "ogg", "wma", "m4a":
		return MediaAudio
	default:
		return MediaUnknown
	}
}
