package legacy

import "encoding/binary"

const (
	vtI4    = 0x03
	vtLPSTR = 0x1E
	vtLPWSTR = 0x1F
)

// PropertySetKind distinguishes the two FMTID-scoped property-ID tables
// this decoder understands. Per spec.md's Design Notes (Open Question
// #3) the two must never share one table: property ID 4 means
// "creator" under SummaryInformation but "total_slides" under
// DocumentSummaryInformation.
type PropertySetKind int

const (
	SummaryInformation PropertySetKind = iota
	DocumentSummaryInformation
)

// summaryInfoFields maps SummaryInformation property IDs to Metadata
// setter keys.
var summaryInfoFields = map[uint32]string{
	2:  "title",
	3:  "subject",
	4:  "creator",
	5:  "keywords",
	6:  "description",
	8:  "last_modified_by",
	9:  "revision",
	18: "application",
}

// docSummaryInfoFields maps DocumentSummaryInformation property IDs to
// Metadata setter keys. IDs 4, 6, and 7 carry VT_I4 counts here, not
// strings — distinct semantics from the same IDs under
// SummaryInformation.
var docSummaryInfoFields = map[uint32]string{
	2:  "category",
	14: "manager",
	15: "company",
	4:  "total_slides",
	6:  "total_paragraphs",
	7:  "total_words",
}

// PropertyValue is either a decoded string or integer, tagged by which
// was populated.
type PropertyValue struct {
	Str    string
	Int    int32
	IsInt  bool
}

// DecodeResult maps field key (per the tables above) to decoded value.
type DecodeResult map[string]PropertyValue

// DecodePropertySet parses an OLE property-set stream (spec.md §4.E).
// A truncated header or property table ends decoding and returns
// whatever fields were already read; a property whose value is out of
// bounds or of an unsupported type is skipped. It never panics.
func DecodePropertySet(data []byte, kind PropertySetKind) (result DecodeResult) {
	result = make(DecodeResult)
	defer func() {
		recover()
	}()

	fieldTable := summaryInfoFields
	if kind == DocumentSummaryInformation {
		fieldTable = docSummaryInfoFields
	}

	if len(data) < 28 {
		return result
	}
	// ByteOrder(2) OSVersion... actually header: ByteOrder(2)|Version(2)|
	// OSVersion(4)|CLSID(16) = 24 bytes, then numPropertySets(4).
	numPropertySets := binary.LittleEndian.Uint32(data[24:28])
	if numPropertySets == 0 || numPropertySets > 100 {
		return result
	}

	// First property set descriptor: FMTID(16) + offset(4), starting at
	// byte 28.
	if len(data) < 28+20 {
		return result
	}
	offset := binary.LittleEndian.Uint32(data[28+16 : 28+20])
	if int(offset)+8 > len(data) {
		return result
	}

	sectionStart := int(offset)
	size := binary.LittleEndian.Uint32(data[sectionStart : sectionStart+4])
	numProperties := binary.LittleEndian.Uint32(data[sectionStart+4 : sectionStart+8])
	if numProperties > uint32(activeLimits.MaxPropertiesPerSet) {
		numProperties = uint32(activeLimits.MaxPropertiesPerSet)
	}
	_ = size

	pairsStart := sectionStart + 8
	for i := uint32(0); i < numProperties; i++ {
		pairOffset := pairsStart + int(i)*8
		if pairOffset+8 > len(data) {
			break
		}
		propID := binary.LittleEndian.Uint32(data[pairOffset : pairOffset+4])
		propOffset := binary.LittleEndian.Uint32(data[pairOffset+4 : pairOffset+8])

		valuePos := sectionStart + int(propOffset)
		val, ok := readPropertyValue(data, valuePos)
		if !ok {
			continue
		}

		key, wanted := fieldTable[propID]
		if !wanted {
			continue
		}
		result[key] = val
	}

	return result
}

func readPropertyValue(data []byte, pos int) (PropertyValue, bool) {
	if pos+4 > len(data) {
		return PropertyValue{}, false
	}
	typ := binary.LittleEndian.Uint32(data[pos : pos+4])
	pos += 4

	switch typ {
	case vtI4:
		if pos+4 > len(data) {
			return PropertyValue{}, false
		}
		return PropertyValue{Int: int32(binary.LittleEndian.Uint32(data[pos : pos+4])), IsInt: true}, true

	case vtLPSTR:
		if pos+4 > len(data) {
			return PropertyValue{}, false
		}
		length := binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
		if int(length) < 0 || pos+int(length) > len(data) {
			return PropertyValue{}, false
		}
		return PropertyValue{Str: DecodeWindows1252(data[pos : pos+int(length)])}, true

	case vtLPWSTR:
		if pos+4 > len(data) {
			return PropertyValue{}, false
		}
		length := binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
		byteLen := int(length) * 2
		if byteLen < 0 || pos+byteLen > len(data) {
			return PropertyValue{}, false
		}
		return PropertyValue{Str: DecodeUTF16LE(data[pos : pos+byteLen])}, true

	default:
		return PropertyValue{}, false
	}
}
