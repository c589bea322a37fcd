// Package pptx implements parse_pptx from spec.md §4.B/§6: it treats a
// .pptx file as a ZIP container of XML parts and assembles a
// normalized Presentation. Grounded on the teacher's
// internal/pptx/pptx.go token-loop XML walking (parseSlideXML,
// ExtractAuthors, ExtractCommentsForSlide, ExtractNotesForSlide,
// ExtractTags), generalized into per-concern files and made to consume
// an in-memory byte slice instead of a file path.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gnemet/slidextract/internal/content"
	"github.com/gnemet/slidextract/internal/model"
)

// Parse implements parse_pptx: it always returns a Presentation, never
// an error. A ZipError (spec.md §7) yields a single diagnostic slide.
// modified is the source file's mtime; it plays no role in the output
// (extracted_at is the extraction's own finish time, set on return).
func Parse(data []byte, fileName string, fileSize int64, modified time.Time) (pres *model.Presentation) {
	pres = &model.Presentation{
		ID:          uuid.NewString(),
		FileName:    fileName,
		FileSize:    fileSize,
		FileType:    model.FileTypePPTX,
		CustomProps: map[string]string{},
	}
	defer func() { pres.ExtractedAt = time.Now() }()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		pres.Slides = []model.Slide{errorSlide(fmt.Sprintf("corrupt PPTX archive: %v", err))}
		pres.CustomProps["error"] = err.Error()
		pres.Metadata.TotalSlides = 1
		return pres
	}

	if f := findFile(zr, "docProps/core.xml"); f != nil {
		if rc, err := f.Open(); err == nil {
			parseCoreProperties(rc, &pres.Metadata)
			rc.Close()
		}
	}
	if f := findFile(zr, "docProps/app.xml"); f != nil {
		if rc, err := f.Open(); err == nil {
			parseAppProperties(rc, &pres.Metadata)
			rc.Close()
		}
	}
	if f := findFile(zr, "docProps/custom.xml"); f != nil {
		if rc, err := f.Open(); err == nil {
			for k, v := range parseCustomProperties(rc) {
				pres.CustomProps[k] = v
			}
			rc.Close()
		}
	}

	authors := commentAuthors(zr)
	pres.Slides = buildSlides(zr, authors)
	pres.Media = extractMedia(zr)
	pres.Themes = extractThemes(zr)
	pres.MasterSlides = extractMasterSlideNames(zr)
	pres.Placeholders = extractPlaceholders(zr)

	pres.Metadata.TotalSlides = len(pres.Slides)
	pres.Metadata.TotalWords = content.CountWords(pres.Slides)

	if len(pres.Slides) == 0 {
		pres.Slides = []model.Slide{content.DiagnosticSlide()}
		pres.Metadata.TotalSlides = 1
	}

	return pres
}

func errorSlide(message string) model.Slide {
	return model.Slide{
		SlideNumber: 1,
		Title:       "Error",
		TextContent: []string{message},
	}
}

// buildSlides parses every ppt/slides/slide{n}.xml part in ascending
// numeric order (spec.md §4.B), pairing each with its notes and
// comments parts by slide number.
func buildSlides(zr *zip.Reader, authors map[string]string) []model.Slide {
	files := slideFilesSorted(zr)
	slides := make([]model.Slide, 0, len(files))

	for i, entry := range files {
		rc, err := entry.file.Open()
		if err != nil {
			continue
		}
		parsed := parseSlideXML(rc)
		rc.Close()

		slide := model.Slide{SlideNumber: i + 1}

		title := content.Sanitize(parsed.title)
		if title == "" {
			title = fmt.Sprintf("Slide %d", i+1)
		}
		slide.Title = title

		for _, t := range parsed.texts {
			if s := content.Sanitize(t); s != "" && content.IsValidText(s) {
				slide.TextContent = append(slide.TextContent, s)
			}
		}
		slide.Shapes = parsed.shapes
		slide.Tables = parsed.tables
		slide.Images = parsed.images

		if notesFile := findFile(zr, "ppt/notesSlides/notesSlide"+strconv.Itoa(entry.num)+".xml"); notesFile != nil {
			if nrc, err := notesFile.Open(); err == nil {
				paragraphs := extractNotesParagraphs(nrc)
				nrc.Close()
				slide.Notes = content.JoinNotes(paragraphs)
			}
		}

		slide.Comments = commentsForSlide(zr, entry.num, authors)

		slides = append(slides, slide)
	}

	return slides
}

type numberedFile struct {
	num  int
	file *zip.File
}

func slideFilesSorted(zr *zip.Reader) []numberedFile {
	var files []numberedFile
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		base := strings.TrimSuffix(strings.TrimPrefix(f.Name, "ppt/slides/slide"), ".xml")
		n, err := strconv.Atoi(base)
		if err != nil {
			continue
		}
		files = append(files, numberedFile{num: n, file: f})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].num < files[j].num })
	return files
}

func findFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
