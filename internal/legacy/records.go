// Package legacy walks the binary [MS-PPT] record stream found in the
// "PowerPoint Document" CFB stream of a .ppt file, decodes text and
// image atoms, and reconstructs a normalized presentation, grounded on
// the record-header layout and BLIP extraction of
// VantageDataChat-VantageSelfservice's legacy .ppt reader.
package legacy

import (
	"encoding/binary"

	"github.com/gnemet/slidextract/internal/content"
)

// Limits bounds the record walker and property-set decoder against
// adversarial input, per spec.md §5.
type Limits struct {
	MaxRecursionDepth    int
	MaxRecordsPerLevel   int
	MaxRecordLengthBytes int
	MaxPropertiesPerSet  int
}

// DefaultLimits returns spec.md §5's exact termination bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxRecursionDepth:    50,
		MaxRecordsPerLevel:   100000,
		MaxRecordLengthBytes: 100 * 1024 * 1024,
		MaxPropertiesPerSet:  1000,
	}
}

// activeLimits is what Walk and DecodePropertySet actually enforce.
// SetLimits is the only way to change it.
var activeLimits = DefaultLimits()

// SetLimits installs operator-tunable bounds, sourced from
// ParserConfig at startup. Each field is clamped to the spec's default
// when zero, negative, or looser than the default: these bounds exist
// to guarantee termination on adversarial input, so they can only be
// tightened, never loosened.
func SetLimits(l Limits) {
	d := DefaultLimits()
	activeLimits = Limits{
		MaxRecursionDepth:    clampToDefault(l.MaxRecursionDepth, d.MaxRecursionDepth),
		MaxRecordsPerLevel:   clampToDefault(l.MaxRecordsPerLevel, d.MaxRecordsPerLevel),
		MaxRecordLengthBytes: clampToDefault(l.MaxRecordLengthBytes, d.MaxRecordLengthBytes),
		MaxPropertiesPerSet:  clampToDefault(l.MaxPropertiesPerSet, d.MaxPropertiesPerSet),
	}
}

func clampToDefault(v, def int) int {
	if v <= 0 || v > def {
		return def
	}
	return v
}

// recordHeader is the 8-byte little-endian header preceding every
// [MS-PPT] record.
type recordHeader struct {
	recVer      uint8
	recInstance uint16
	recType     uint16
	recLen      uint32
}

func readHeader(data []byte, pos int) (recordHeader, bool) {
	if pos+8 > len(data) {
		return recordHeader{}, false
	}
	verInstance := binary.LittleEndian.Uint16(data[pos : pos+2])
	return recordHeader{
		recVer:      uint8(verInstance & 0x0F),
		recInstance: verInstance >> 4,
		recType:     binary.LittleEndian.Uint16(data[pos+2 : pos+4]),
		recLen:      binary.LittleEndian.Uint32(data[pos+4 : pos+8]),
	}, true
}

// Record type constants relevant to the walker and atom decoders.
const (
	rtDocument           = 0x03E8
	rtDocumentAtom       = 0x03E9
	rtSlide              = 0x03EE
	rtNotes              = 0x03F0
	rtEnvironment        = 0x03F2
	rtMainMaster         = 0x03F8
	rtSlideListWithText  = 0x0FF0
	rtFontCollection     = 0x07D5
	rtHeadersFooters     = 0x0FD9
	rtProgTags           = 0x1388
	rtTextHeaderAtom     = 0x0F9F
	rtTextCharsAtom      = 0x0FA0
	rtTextBytesAtom      = 0x0FA8
	rtCString            = 0x0FBA
	rtDrawingGroup       = 0x040B
	rtDrawing            = 0x040C
	rtList               = 0x07D0

	officeArtDggContainer   = 0xF000
	officeArtBStoreContainer = 0xF001
	officeArtDgContainer    = 0xF002
	officeArtSpgrContainer  = 0xF003
	officeArtSpContainer    = 0xF004
	officeArtClientTextbox  = 0xF00D

	blipEMF  = 0xF01A
	blipWMF  = 0xF01B
	blipPICT = 0xF01C
	blipJPEG = 0xF01D
	blipPNG  = 0xF01E
	blipDIB  = 0xF01F
	blipTIFF = 0xF029
	blipJPEG2 = 0xF02A
)

// containerRecordTypes are record types that recurse regardless of
// recVer, per spec.md §4.C.
var containerRecordTypes = map[uint16]bool{
	rtDocument:              true,
	rtSlide:                 true,
	rtNotes:                 true,
	rtMainMaster:            true,
	rtSlideListWithText:     true,
	rtDrawingGroup:          true,
	rtDrawing:               true,
	rtList:                  true,
	rtEnvironment:           true,
	rtFontCollection:        true,
	rtHeadersFooters:        true,
	rtProgTags:              true,
	officeArtDggContainer:   true,
	officeArtBStoreContainer: true,
	officeArtDgContainer:    true,
	officeArtSpgrContainer:  true,
	officeArtSpContainer:    true,
	officeArtClientTextbox:  true,
}

// walkState carries the mutable accumulator threaded explicitly through
// the recursion (spec.md's Design Notes call for this instead of a
// closure-captured counter).
type walkState struct {
	globalTexts  []string
	slideBuckets map[int][]string
	currentSlide int
	media        []decodedBlip
	docWidthEMU  int32
	docHeightEMU int32
	sawDocAtom   bool
}

type decodedBlip struct {
	extension string
	data      []byte
}

func newWalkState() *walkState {
	return &walkState{slideBuckets: make(map[int][]string)}
}

func (w *walkState) appendText(s string) {
	if s == "" {
		return
	}
	w.globalTexts = append(w.globalTexts, s)
	if w.currentSlide != 0 {
		w.slideBuckets[w.currentSlide] = append(w.slideBuckets[w.currentSlide], s)
	}
}

// walk recursively traverses records in data[pos:end], following
// spec.md §4.C's algorithm: 1-byte resync on implausible recLen, a
// per-level record cap, and a depth cap.
func walk(data []byte, pos, end, depth int, st *walkState) {
	if depth > activeLimits.MaxRecursionDepth {
		return
	}

	count := 0
	for pos+8 <= end {
		count++
		if count > activeLimits.MaxRecordsPerLevel {
			return
		}

		hdr, ok := readHeader(data, pos)
		if !ok {
			return
		}
		pos += 8

		remaining := end - pos
		if hdr.recLen > uint32(remaining) || hdr.recLen > uint32(activeLimits.MaxRecordLengthBytes) {
			// ImplausibleRecord: resync by rewinding to just past the
			// header start and retrying one byte later.
			pos -= 7
			continue
		}

		bodyEnd := pos + int(hdr.recLen)
		isContainer := hdr.recVer == 0x0F || containerRecordTypes[hdr.recType]

		if hdr.recType == rtSlide {
			st.currentSlide++
		}

		if isContainer {
			walk(data, pos, bodyEnd, depth+1, st)
		} else {
			decodeAtom(data[pos:bodyEnd], hdr.recType, hdr.recInstance, st)
		}

		pos = bodyEnd
	}
}

// Walk parses the full "PowerPoint Document" stream and returns the
// accumulated result.
func Walk(stream []byte) *walkState {
	st := newWalkState()
	walk(stream, 0, len(stream), 0, st)
	return st
}

// sanitizeAndAccept runs the shared text-quality pipeline used by all
// text atom decoders.
func sanitizeAndAccept(raw string) (string, bool) {
	s := content.Sanitize(raw)
	if s == "" {
		return "", false
	}
	if !content.IsValidText(s) {
		return "", false
	}
	return s, true
}
