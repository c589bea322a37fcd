package legacy

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gnemet/slidextract/internal/cfb"
	"github.com/gnemet/slidextract/internal/content"
	"github.com/gnemet/slidextract/internal/model"
)

const (
	streamPowerPointDocument = "PowerPoint Document"
	streamSummaryInfo        = "\x05SummaryInformation"
	streamDocSummaryInfo     = "\x05DocumentSummaryInformation"
)

// Parse implements parse_ppt from spec.md §6: it never fails, always
// returning a Presentation. Recovery paths (NotCompound, MissingStream)
// fall through to a degraded best-effort scan per spec.md §7. modified
// is the source file's mtime; it plays no role in the output
// (extracted_at is the extraction's own finish time, set on return).
func Parse(data []byte, fileName string, fileSize int64, modified time.Time) (pres *model.Presentation) {
	pres = &model.Presentation{
		ID:          uuid.NewString(),
		FileName:    fileName,
		FileSize:    fileSize,
		FileType:    model.FileTypePPT,
		CustomProps: map[string]string{},
	}
	defer func() { pres.ExtractedAt = time.Now() }()

	container, err := cfb.Open(data)
	if err != nil {
		degradedScan(data, pres)
		return pres
	}

	pptStream := container.Find(streamPowerPointDocument)
	if len(pptStream) == 0 {
		degradedScan(data, pres)
		return pres
	}

	st := Walk(pptStream)
	applyPropertySets(container, &pres.Metadata)
	if format := st.PresentationFormat(); format != "" {
		pres.Metadata.PresentationFormat = format
	}

	assembleSlides(st, pres)
	assembleMedia(st, pres)
	finalizeMetadata(pres)

	return pres
}

func applyPropertySets(container *cfb.Container, meta *model.Metadata) {
	if raw := container.Find(streamSummaryInfo); len(raw) > 0 {
		applyDecodeResult(DecodePropertySet(raw, SummaryInformation), meta)
	}
	if raw := container.Find(streamDocSummaryInfo); len(raw) > 0 {
		applyDecodeResult(DecodePropertySet(raw, DocumentSummaryInformation), meta)
	}
}

func applyDecodeResult(result DecodeResult, meta *model.Metadata) {
	for key, val := range result {
		switch key {
		case "title":
			meta.Title = val.Str
		case "subject":
			meta.Subject = val.Str
		case "creator":
			meta.Creator = val.Str
		case "keywords":
			meta.Keywords = val.Str
		case "description":
			meta.Description = val.Str
		case "last_modified_by":
			meta.LastModifiedBy = val.Str
		case "revision":
			meta.Revision = val.Str
		case "application":
			meta.Application = val.Str
		case "category":
			meta.Category = val.Str
		case "manager":
			meta.Manager = val.Str
		case "company":
			meta.Company = val.Str
		case "total_slides":
			if val.IsInt {
				meta.TotalSlides = int(val.Int)
			}
		case "total_paragraphs":
			if val.IsInt {
				meta.TotalParagraphs = int(val.Int)
			}
		case "total_words":
			if val.IsInt {
				meta.TotalWords = int(val.Int)
			}
		}
	}
}

func assembleSlides(st *walkState, pres *model.Presentation) {
	slides := content.AssembleFromBuckets(st.slideBuckets)
	if len(slides) == 0 {
		slides = content.AssembleFallback(st.globalTexts, 0)
	}
	if len(slides) == 0 {
		slides = []model.Slide{content.DiagnosticSlide()}
	}
	pres.Slides = slides
}

func assembleMedia(st *walkState, pres *model.Presentation) {
	for i, blip := range st.media {
		encoded := base64.StdEncoding.EncodeToString(blip.data)
		m := model.Media{
			Name:      "image_" + strconv.Itoa(i+1) + "." + blip.extension,
			Type:      model.MediaImage,
			Size:      len(blip.data),
			Extension: blip.extension,
			Data:      encoded,
		}
		pres.Media = append(pres.Media, m)
	}
}

func finalizeMetadata(pres *model.Presentation) {
	pres.Metadata.TotalSlides = len(pres.Slides)
	pres.Metadata.TotalWords = content.CountWords(pres.Slides)
}

// degradedScan implements spec.md §7's NotCompound/MissingStream
// recovery path: a best-effort scan of the whole file for printable
// ASCII runs (see scanForText), followed by the same slide-assembly
// fallback used by the structured walker. UTF-16LE text is not picked
// up by this scan.
func degradedScan(data []byte, pres *model.Presentation) {
	texts := scanForText(data)
	slides := content.AssembleFallback(texts, 0)
	if len(slides) == 0 {
		slides = []model.Slide{content.DiagnosticSlide()}
	}
	pres.Slides = slides
	pres.Metadata.TotalSlides = len(pres.Slides)
	pres.Metadata.TotalWords = content.CountWords(pres.Slides)
}

// scanForText looks for runs of printable Windows-1252/ASCII bytes at
// least 4 bytes long, treating them as candidate text fragments. This
// is intentionally crude — it is the fallback used only when the CFB
// structure itself could not be parsed.
func scanForText(data []byte) []string {
	var texts []string
	var run []byte
	flush := func() {
		if len(run) < 4 {
			run = run[:0]
			return
		}
		if s, ok := sanitizeAndAccept(DecodeWindows1252(run)); ok {
			texts = append(texts, s)
		}
		run = run[:0]
	}
	for _, b := range data {
		if b >= 0x20 && b < 0x7F {
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()
	return texts
}
