package legacy

import "testing"

// buildPropertySet assembles a minimal OLE property-set stream: the
// 24-byte header, numPropertySets, one FMTID+offset descriptor, and a
// single section housing the given (propID, value) pairs. Each value is
// pre-encoded (type tag + payload) by the caller.
func buildPropertySet(numProperties uint32, pairs []struct {
	id    uint32
	value []byte
}) []byte {
	data := make([]byte, 48)
	putLE32(data[24:28], 1) // numPropertySets

	sectionStart := 48
	pairsStart := sectionStart + 8
	valuesStart := pairsStart + len(pairs)*8

	putLE32(data[44:48], uint32(sectionStart)) // offset to the section

	data = append(data, make([]byte, valuesStart-len(data))...)
	putLE32(data[sectionStart:sectionStart+4], uint32(valuesStart-sectionStart))
	putLE32(data[sectionStart+4:sectionStart+8], numProperties)

	valuePos := valuesStart
	for i, p := range pairs {
		pairOffset := pairsStart + i*8
		putLE32(data[pairOffset:pairOffset+4], p.id)
		putLE32(data[pairOffset+4:pairOffset+8], uint32(valuePos-sectionStart))
		data = append(data, p.value...)
		valuePos += len(p.value)
	}

	return data
}

func vtLPWSTRValue(s string) []byte {
	chars := []rune(s)
	out := make([]byte, 8)
	putLE32(out[0:4], vtLPWSTR)
	putLE32(out[4:8], uint32(len(chars)))
	out = append(out, utf16leBytes(s)[:len(chars)*2]...)
	return out
}

func TestDecodePropertySetZeroPropertiesLeavesResultEmpty(t *testing.T) {
	data := buildPropertySet(0, nil)
	result := DecodePropertySet(data, SummaryInformation)
	if len(result) != 0 {
		t.Errorf("expected empty result for numProperties == 0, got %v", result)
	}
}

func TestDecodePropertySetReadsCreatorUnderSummaryInformation(t *testing.T) {
	data := buildPropertySet(1, []struct {
		id    uint32
		value []byte
	}{{id: 4, value: vtLPWSTRValue("Alice")}})

	result := DecodePropertySet(data, SummaryInformation)
	got, ok := result["creator"]
	if !ok || got.Str != "Alice" {
		t.Errorf("result[creator] = %+v, ok=%v, want Alice", got, ok)
	}
}

func TestDecodePropertySetSameIDDifferentMeaningUnderDocSummary(t *testing.T) {
	value := make([]byte, 8)
	putLE32(value[0:4], vtI4)
	putLE32(value[4:8], 42)

	data := buildPropertySet(1, []struct {
		id    uint32
		value []byte
	}{{id: 4, value: value}})

	result := DecodePropertySet(data, DocumentSummaryInformation)
	got, ok := result["total_slides"]
	if !ok || !got.IsInt || got.Int != 42 {
		t.Errorf("result[total_slides] = %+v, ok=%v, want IsInt=true Int=42", got, ok)
	}
	if _, hasCreator := result["creator"]; hasCreator {
		t.Error("property ID 4 must not resolve to 'creator' under DocumentSummaryInformation")
	}
}

func TestDecodePropertySetTruncatedInputDoesNotPanic(t *testing.T) {
	data := []byte{1, 2, 3}
	result := DecodePropertySet(data, SummaryInformation)
	if len(result) != 0 {
		t.Errorf("expected empty result for truncated input, got %v", result)
	}
}
