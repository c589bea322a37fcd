// Command inspect runs the parser over a local .ppt/.pptx file and
// prints the resulting Presentation as JSON, for debugging extraction
// without standing up the server, grounded on the teacher's
// scripts/debug_pptx.go one-off dumper.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gnemet/slidextract/internal/config"
	"github.com/gnemet/slidextract/internal/legacy"
	"github.com/gnemet/slidextract/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <path-to-ppt-or-pptx>", os.Args[0])
	}
	path := os.Args[1]

	if cfg, err := config.LoadConfig(); err == nil {
		legacy.SetLimits(legacy.Limits{
			MaxRecursionDepth:    cfg.Parser.MaxRecursionDepth,
			MaxRecordsPerLevel:   cfg.Parser.MaxRecordsPerLevel,
			MaxRecordLengthBytes: cfg.Parser.MaxRecordLengthBytes,
			MaxPropertiesPerSet:  cfg.Parser.MaxPropertiesPerSet,
		})
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("stat %s: %v", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	pres := parser.Parse(data, info.Name(), info.Size(), modTime(info.ModTime()))

	out, err := json.MarshalIndent(pres, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}

func modTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
