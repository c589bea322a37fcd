package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize normalizes line endings, strips C0 control characters (other
// than tab/newline), collapses whitespace runs, and trims the result.
// It is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var stripped strings.Builder
	stripped.Grow(len(s))
	for _, r := range s {
		if isC0Control(r) {
			continue
		}
		stripped.WriteRune(r)
	}

	return strings.TrimSpace(collapseWhitespace(stripped.String()))
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}

// knownStreamNames are CFB/package artifact names that leak through when
// binary data is misread as text.
var knownStreamNames = []string{
	"Root Entry",
	"PowerPoint Document",
	"Current User",
	"SummaryInformation",
	"DocumentSummaryInformation",
	"Pictures",
}

func isKnownGarbagePattern(s string) bool {
	for _, name := range knownStreamNames {
		if s == name {
			return true
		}
	}
	if strings.HasPrefix(s, "PK") {
		return true
	}
	if strings.Contains(s, "[Content_Types]") {
		return true
	}
	if strings.Contains(s, "_rels/") {
		return true
	}
	if strings.HasSuffix(s, ".xml") || strings.HasSuffix(s, ".rels") {
		return true
	}
	return false
}

// systemPlaceholders are master-slide / layout placeholder strings that
// carry no authored content.
var systemPlaceholders = []string{
	"Click to edit Master title style",
	"Click to edit Master text styles",
	"Click to edit Master subtitle style",
	"Click to edit master title style",
	"Click to edit master text styles",
	"Second level",
	"Third level",
	"Fourth level",
	"Fifth level",
}

// systemFontNames are common typeface names that occasionally decode as
// standalone "text" atoms in legacy files.
var systemFontNames = []string{
	"Arial", "Times New Roman", "Calibri", "Tahoma", "Verdana",
}

// IsSystemString reports whether s is a known placeholder, font name, or
// package-structure artifact rather than authored content.
func IsSystemString(s string) bool {
	trimmed := strings.TrimSpace(s)
	for _, p := range systemPlaceholders {
		if strings.Contains(trimmed, p) || strings.Contains(strings.ToLower(trimmed), strings.ToLower(p)) {
			return true
		}
	}
	for _, f := range systemFontNames {
		if strings.EqualFold(trimmed, f) {
			return true
		}
	}
	return isKnownGarbagePattern(trimmed)
}

// IsValidText is the acceptance predicate for a decoded string: it must
// look like genuine prose rather than garbage produced by
// misinterpreting binary data, a placeholder, or a package artifact.
func IsValidText(s string) bool {
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) < 2 {
		return false
	}
	if containsC0Control(trimmed) {
		return false
	}
	if isPureHex(trimmed) || isPureDigits(trimmed) || isSingleLetter(trimmed) {
		return false
	}
	if isKnownGarbagePattern(trimmed) {
		return false
	}
	if IsSystemString(trimmed) {
		return false
	}

	total, textual, exotic := 0, 0, 0
	hasLetter := false
	for _, r := range trimmed {
		total++
		if isTextualRune(r) {
			textual++
		}
		if isExoticHighUnicode(r) {
			exotic++
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if total == 0 || !hasLetter {
		return false
	}
	if float64(textual)/float64(total) < 0.5 {
		return false
	}
	if float64(exotic)/float64(total) >= 0.2 {
		return false
	}
	return true
}

// IsNumericPlaceholder reports whether a note/text paragraph is purely
// digits — the slide-number placeholders speaker notes commonly carry.
func IsNumericPlaceholder(s string) bool {
	return isPureDigits(strings.TrimSpace(s))
}
