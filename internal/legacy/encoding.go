package legacy

import "unicode/utf16"

// win1252High maps the 0x80-0x9F Windows-1252 byte range to Unicode code
// points; the rest of the code page is identity with Latin-1.
var win1252High = [32]rune{
	0x20AC, 0x0081, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008D, 0x017D, 0x008F,
	0x0090, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x009D, 0x017E, 0x0178,
}

// DecodeWindows1252 decodes b as Windows-1252, stopping at the first NUL
// byte (legacy PPT ANSI atoms are frequently over-allocated and padded
// with trailing zeros).
func DecodeWindows1252(b []byte) string {
	runes := make([]rune, 0, len(b))
	for _, c := range b {
		if c == 0x00 {
			break
		}
		switch {
		case c >= 0x80 && c <= 0x9F:
			runes = append(runes, win1252High[c-0x80])
		default:
			runes = append(runes, rune(c))
		}
	}
	return string(runes)
}

// DecodeUTF16LE decodes b as little-endian UTF-16, stopping at the first
// NUL code unit.
func DecodeUTF16LE(b []byte) string {
	n := len(b) / 2
	units := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		u := uint16(b[i*2]) | uint16(b[i*2+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}
