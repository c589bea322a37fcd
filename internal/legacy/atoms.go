package legacy

import (
	"encoding/binary"
	"fmt"

	"github.com/gnemet/slidextract/internal/content"
)

// blipExtensions maps the non-JPEG/PNG BLIP record types to their file
// extension, per spec.md §4.D. Their single-UID header size is the
// uidSize constant in decodeGenericBlip.
var blipExtensions = map[uint16]string{
	blipEMF:  "emf",
	blipWMF:  "wmf",
	blipPICT: "pict",
	blipDIB:  "bmp",
	blipTIFF: "tiff",
}

// decodeAtom dispatches a single non-container record body to the
// appropriate handler. Any panic recovering here is treated as a
// DecodeError (spec.md §7): the atom is discarded and the walk
// continues.
func decodeAtom(body []byte, recType uint16, recInstance uint16, st *walkState) {
	defer func() {
		recover()
	}()

	switch recType {
	case rtTextCharsAtom:
		decodeTextCharsAtom(body, st)
	case rtTextBytesAtom:
		decodeTextBytesAtom(body, st)
	case rtCString:
		decodeCStringAtom(body, st)
	case rtTextHeaderAtom:
		// Documentary only; the text type byte is not consumed.
	case rtDocumentAtom:
		decodeDocumentAtom(body, st)
	case blipJPEG, blipJPEG2:
		decodeJPEGBlip(body, st)
	case blipPNG:
		decodePNGBlip(body, st)
	case blipEMF, blipWMF, blipPICT, blipDIB, blipTIFF:
		decodeGenericBlip(body, recType, recInstance, st)
	}
}

func decodeTextCharsAtom(body []byte, st *walkState) {
	raw := DecodeUTF16LE(body)
	if s, ok := sanitizeAndAccept(raw); ok {
		st.appendText(s)
	}
}

func decodeTextBytesAtom(body []byte, st *walkState) {
	raw := DecodeWindows1252(body)
	if s, ok := sanitizeAndAccept(raw); ok {
		st.appendText(s)
	}
}

// decodeCStringAtom follows spec.md §4.D exactly: sanitize, then reject
// only system strings (not the full is_valid_text predicate) before
// appending — CString atoms carry short labels (e.g. OLE object names)
// that would otherwise fail is_valid_text's length/ratio checks.
func decodeCStringAtom(body []byte, st *walkState) {
	s := content.Sanitize(DecodeUTF16LE(body))
	if s == "" || content.IsSystemString(s) {
		return
	}
	st.appendText(s)
}

// decodeDocumentAtom reads the slide-size fields (two int32 EMUs) and
// converts them to the "{W:.1} x {H:.1} inches" presentation_format
// string.
func decodeDocumentAtom(body []byte, st *walkState) {
	if len(body) < 8 {
		return
	}
	st.docWidthEMU = int32(binary.LittleEndian.Uint32(body[0:4]))
	st.docHeightEMU = int32(binary.LittleEndian.Uint32(body[4:8]))
	st.sawDocAtom = true
}

// PresentationFormat renders the slide-size fields captured from
// RT_DocumentAtom, or "" if none was seen.
func (w *walkState) PresentationFormat() string {
	if !w.sawDocAtom {
		return ""
	}
	const emuPerInch = 914400.0
	wIn := float64(w.docWidthEMU) / emuPerInch
	hIn := float64(w.docHeightEMU) / emuPerInch
	return fmt.Sprintf("%.1f x %.1f inches", wIn, hIn)
}

const minBlipPayload = 100

func decodeJPEGBlip(body []byte, st *walkState) {
	const uidSize = 17
	if len(body) <= uidSize {
		return
	}
	payload := body[uidSize:]
	if len(payload) <= minBlipPayload {
		return
	}
	st.media = append(st.media, decodedBlip{extension: "jpg", data: append([]byte(nil), payload...)})
}

func decodePNGBlip(body []byte, st *walkState) {
	const uidSize = 17
	if len(body) <= uidSize {
		return
	}
	payload := body[uidSize:]
	if len(payload) <= minBlipPayload {
		return
	}
	st.media = append(st.media, decodedBlip{extension: "png", data: append([]byte(nil), payload...)})
}

func decodeGenericBlip(body []byte, recType uint16, _ uint16, st *walkState) {
	ext, ok := blipExtensions[recType]
	if !ok {
		return
	}
	const uidSize = 16
	if len(body) <= uidSize {
		return
	}
	payload := body[uidSize:]
	if len(payload) <= minBlipPayload {
		return
	}
	st.media = append(st.media, decodedBlip{extension: ext, data: append([]byte(nil), payload...)})
}
