// Package parser dispatches a PowerPoint file to the PPTX or legacy PPT
// parser by file extension, per spec.md §6. Parse is total: it always
// returns a Presentation and never propagates an error to its caller.
package parser

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gnemet/slidextract/internal/legacy"
	"github.com/gnemet/slidextract/internal/model"
	"github.com/gnemet/slidextract/internal/pptx"
)

// Parse selects a parser by case-insensitive extension and runs it.
// Any extension other than .ppt/.pptx is treated as legacy PPT, since
// the caller (upload handler, directory watcher) has already filtered
// on extension before reaching this dispatcher.
func Parse(data []byte, fileName string, fileSize int64, modified time.Time) *model.Presentation {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pptx":
		return pptx.Parse(data, fileName, fileSize, modified)
	default:
		return legacy.Parse(data, fileName, fileSize, modified)
	}
}
