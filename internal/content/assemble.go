package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnemet/slidextract/internal/model"
)

// DefaultFallbackContentThreshold is the number of content entries the
// heuristic assembler packs into one slide before starting a new one.
// spec.md's Design Notes flag the original's hard-coded value of 6 as
// arbitrary; it is kept as the default but is now a parameter so callers
// (and tests) can vary it.
const DefaultFallbackContentThreshold = 6

// DiagnosticSlide is emitted whenever neither assembly path yields any
// accepted text — the "single diagnostic slide" invariant from spec.md §3.
func DiagnosticSlide() model.Slide {
	return model.Slide{
		SlideNumber: 1,
		Title:       "No Content Found",
		TextContent: []string{"Could not extract text from this presentation."},
	}
}

// AssembleFromBuckets builds slides from a per-slide text accumulator
// keyed by the walker's current-slide counter (spec.md §4.C/§4.F
// "preferred path"). Bucket keys need not be contiguous or start at 1;
// output slide numbers are always a dense 1..N sequence in ascending key
// order. Returns nil if buckets is empty so callers can fall back.
func AssembleFromBuckets(buckets map[int][]string) []model.Slide {
	if len(buckets) == 0 {
		return nil
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	slides := make([]model.Slide, 0, len(keys))
	for i, k := range keys {
		texts := buckets[k]
		slide := model.Slide{SlideNumber: i + 1}
		if len(texts) > 0 {
			slide.Title = texts[0]
			slide.TextContent = append([]string(nil), texts[1:]...)
		}
		if slide.Title == "" {
			slide.Title = fmt.Sprintf("Slide %d", slide.SlideNumber)
		}
		slides = append(slides, slide)
	}
	return slides
}

// AssembleFallback builds slides from a flat, order-preserving text list
// when no per-slide boundaries were recoverable (spec.md §4.F "fallback
// path"). Text is deduplicated case-insensitively first, then greedily
// partitioned: the first short (<100 rune) text before a title is chosen
// becomes that slide's title, subsequent texts become content, and a
// slide is flushed once it accumulates contentThreshold content entries.
func AssembleFallback(texts []string, contentThreshold int) []model.Slide {
	if contentThreshold <= 0 {
		contentThreshold = DefaultFallbackContentThreshold
	}

	deduped := dedupeCaseInsensitive(texts)
	if len(deduped) == 0 {
		return nil
	}

	var slides []model.Slide
	var title string
	var content []string

	flush := func() {
		if title == "" && len(content) == 0 {
			return
		}
		n := len(slides) + 1
		if title == "" {
			title = fmt.Sprintf("Slide %d", n)
		}
		slides = append(slides, model.Slide{
			SlideNumber: n,
			Title:       title,
			TextContent: append([]string(nil), content...),
		})
		title = ""
		content = nil
	}

	for _, t := range deduped {
		if title == "" && len([]rune(t)) < 100 {
			title = t
			continue
		}
		content = append(content, t)
		if len(content) >= contentThreshold {
			flush()
		}
	}
	flush()

	return slides
}

func dedupeCaseInsensitive(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// JoinNotes concatenates speaker-note paragraphs with newlines, dropping
// numeric-only paragraphs (slide-number placeholders), per spec.md §3.
func JoinNotes(paragraphs []string) string {
	var kept []string
	for _, p := range paragraphs {
		p = Sanitize(p)
		if p == "" || IsNumericPlaceholder(p) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n")
}

// CountWords sums whitespace-split, non-empty tokens across all slide
// titles and content strings (spec.md §4.F "Word counting").
func CountWords(slides []model.Slide) int {
	total := 0
	for _, s := range slides {
		total += len(strings.Fields(s.Title))
		for _, t := range s.TextContent {
			total += len(strings.Fields(t))
		}
	}
	return total
}
