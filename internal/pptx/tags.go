package pptx

import (
	"archive/zip"
	"io"
	"regexp"
	"strings"
)

// tagPattern matches {{tag}} placeholder markers, adapted unchanged
// from the teacher's ExtractTags — a template-detection feature the
// distilled spec dropped but the corpus's own PPTX code already
// supports (see SPEC_FULL.md §5).
var tagPattern = regexp.MustCompile(`{{(.*?)}}`)

// extractPlaceholders scans every slide XML part for {{tag}} markers
// and returns the distinct tags found, in first-seen order.
func extractPlaceholders(zr *zip.Reader) []string {
	seen := make(map[string]bool)
	var tags []string

	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		for _, match := range tagPattern.FindAllStringSubmatch(string(data), -1) {
			if len(match) < 2 {
				continue
			}
			tag := match[1]
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
