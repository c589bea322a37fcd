// Package observer watches the intake ("stage") directory for new
// PowerPoint files and runs them through the parser and storage
// pipeline, adapted from the teacher's PPTX-thumbnail watcher onto the
// text-extraction pipeline in SPEC_FULL.md §4.
package observer

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnemet/slidextract/internal/ai"
	"github.com/gnemet/slidextract/internal/config"
	"github.com/gnemet/slidextract/internal/database"
	"github.com/gnemet/slidextract/internal/model"
	"github.com/gnemet/slidextract/internal/parser"
)

type Observer struct {
	cfg         *config.Config
	db          *sql.DB
	aiClient    *ai.Client
	activeTasks int
	mu          sync.Mutex
	LogChan     chan string
}

func NewObserver(cfg *config.Config, db *sql.DB, aiClient *ai.Client, logChan chan string) *Observer {
	return &Observer{
		cfg:      cfg,
		db:       db,
		aiClient: aiClient,
		LogChan:  logChan,
	}
}

func (o *Observer) log(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Println(msg)
	if o.LogChan != nil {
		select {
		case o.LogChan <- msg:
		default:
		}
	}
}

func (o *Observer) incrementTask() {
	o.mu.Lock()
	o.activeTasks++
	o.mu.Unlock()
}

func (o *Observer) decrementTask() {
	o.mu.Lock()
	o.activeTasks--
	o.mu.Unlock()
}

func isPresentationFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".pptx") || strings.HasSuffix(lower, ".ppt")
}

func (o *Observer) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	stageDir := o.cfg.Application.Storage.Stage
	if stageDir == "" {
		return fmt.Errorf("stage storage directory not configured")
	}
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return fmt.Errorf("failed to create stage directory: %v", err)
	}

	processedDir := o.cfg.Application.Storage.Processed
	if processedDir != "" {
		if err := os.MkdirAll(processedDir, 0755); err != nil {
			o.log("Failed to create processed directory: %v", err)
		}
	}

	if err := watcher.Add(stageDir); err != nil {
		return err
	}

	o.log("Background observer started, watching: %s", stageDir)
	o.scanDirectory(stageDir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && isPresentationFile(event.Name) {
				o.log("Detected change in: %s", event.Name)
				time.Sleep(2 * time.Second)
				o.processFile(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.log("Watcher error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func (o *Observer) scanDirectory(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		o.log("Failed to scan directory: %v", err)
		return
	}
	for _, f := range files {
		if !f.IsDir() && isPresentationFile(f.Name()) {
			o.processFile(filepath.Join(dir, f.Name()))
		}
	}
}

func (o *Observer) processFile(path string) {
	o.incrementTask()
	defer o.decrementTask()

	filename := filepath.Base(path)
	o.log("Processing file: %s", filename)

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		o.log("Failed to read file %s: %v", filename, err)
		return
	}

	hash := sha256.Sum256(fileBytes)
	checksum := hex.EncodeToString(hash[:])

	if existing, err := database.GetPresentationByChecksum(o.db, checksum); err == nil && existing != nil {
		o.log("File %s (checksum: %s) already processed (ID: %d); skipping", filename, checksum, existing.ID)
		o.finalizeFile(path, filename)
		return
	}

	info, err := os.Stat(path)
	var modified time.Time
	var size int64
	if err == nil {
		modified = info.ModTime()
		size = info.Size()
	} else {
		size = int64(len(fileBytes))
	}

	pres := parser.Parse(fileBytes, filename, size, modified)

	fileID, err := database.SavePresentation(o.db, pres, checksum)
	if err != nil {
		o.log("Failed to save presentation to DB: %v", err)
		return
	}

	if o.aiClient != nil {
		ctx := context.Background()
		fullText := concatenateSlideText(pres)
		if fullText != "" {
			summary, usage, err := o.aiClient.SummarizeText(ctx, fullText)
			if err != nil {
				o.log("Failed to summarize %s: %v", filename, err)
			} else {
				database.UpdatePresentationSummary(o.db, fileID, summary)
				database.LogAIUsage(o.db, &database.AIUsage{
					Provider:         "gemini",
					Model:            o.aiClient.ModelName(),
					PromptTokens:     usage.PromptTokens,
					CompletionTokens: usage.CompletionTokens,
					TotalTokens:      usage.TotalTokens,
				})
			}
		}
	}

	o.log("Successfully processed: %s (%d slides)", filename, pres.Metadata.TotalSlides)
	o.finalizeFile(path, filename)
}

// concatenateSlideText joins each slide's title and body text into a
// single block suitable for summarization.
func concatenateSlideText(pres *model.Presentation) string {
	var sb strings.Builder
	for _, s := range pres.Slides {
		if s.Title != "" {
			sb.WriteString(s.Title)
			sb.WriteString("\n")
		}
		for _, t := range s.TextContent {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

func (o *Observer) finalizeFile(path, filename string) {
	if o.cfg.Application.Storage.Processed == "" {
		return
	}
	newPath := filepath.Join(o.cfg.Application.Storage.Processed, filename)
	if path == newPath {
		return
	}
	if err := os.Rename(path, newPath); err != nil {
		o.log("Failed to move %s to processed folder: %v", filename, err)
		return
	}
	o.log("Moved %s to %s", filename, newPath)
}

func (o *Observer) IsProcessing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.activeTasks > 0
}
