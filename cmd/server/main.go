// Command server runs the slidextract HTTP service: a multipart upload
// endpoint, a stored-presentation dashboard and JSON API, the embedded
// capabilities catalog, and an about page, alongside the background
// directory watcher.
package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/gnemet/slidextract/internal/ai"
	"github.com/gnemet/slidextract/internal/config"
	"github.com/gnemet/slidextract/internal/database"
	"github.com/gnemet/slidextract/internal/legacy"
	"github.com/gnemet/slidextract/internal/mcp"
	"github.com/gnemet/slidextract/internal/model"
	"github.com/gnemet/slidextract/internal/observer"
	"github.com/gnemet/slidextract/internal/parser"
)

//go:embed docs/about.md
var aboutDocs embed.FS

var (
	db       *sql.DB
	tmpl     *template.Template
	catalog  *mcp.CatalogProvider
	aiClient *ai.Client
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	legacy.SetLimits(legacy.Limits{
		MaxRecursionDepth:    cfg.Parser.MaxRecursionDepth,
		MaxRecordsPerLevel:   cfg.Parser.MaxRecordsPerLevel,
		MaxRecordLengthBytes: cfg.Parser.MaxRecordLengthBytes,
		MaxPropertiesPerSet:  cfg.Parser.MaxPropertiesPerSet,
	})

	conn, err := database.NewConnection(cfg.Database.GetConnectStr())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()
	if err := database.EnsureSchema(conn); err != nil {
		log.Fatal(err)
	}
	db = conn

	if err := os.MkdirAll(cfg.Application.Storage.Stage, 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Application.Storage.Processed, 0755); err != nil {
		log.Fatal(err)
	}

	catalog = mcp.NewCatalogProvider()
	tmpl = template.Must(template.ParseGlob("ui/templates/*.html"))

	if provider, ok := cfg.AI.Providers[cfg.AI.ActiveProvider]; ok && provider.Key != "" {
		ctx := context.Background()
		client, err := ai.NewClient(ctx, provider.Key, provider.Model)
		if err != nil {
			log.Printf("AI client disabled: %v", err)
		} else {
			aiClient = client
			defer aiClient.Close()
		}
	}

	obs := observer.NewObserver(cfg, db, aiClient, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := obs.Start(ctx); err != nil {
			log.Printf("observer stopped: %v", err)
		}
	}()

	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("ui/static"))))

	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/upload", handleUpload)
	http.HandleFunc("/presentations", handlePresentationsList)
	http.HandleFunc("/presentations/", handlePresentationByID)
	http.HandleFunc("/capabilities", handleCapabilities)
	http.HandleFunc("/capabilities/", handleCapabilities)
	http.HandleFunc("/about", handleAbout)
	http.HandleFunc("/usage", handleUsage)

	host := cfg.Application.Host
	port := cfg.Application.Port
	if port == 0 {
		port = 8080
	}
	addr := host + ":" + strconv.Itoa(port)
	log.Printf("slidextract starting on http://%s\n", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	presentations, err := database.ListPresentations(db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, "base.html", struct {
		Presentations []database.StoredPresentation
	}{presentations})
}

func handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	lower := strings.ToLower(header.Filename)
	if !strings.HasSuffix(lower, ".ppt") && !strings.HasSuffix(lower, ".pptx") {
		http.Error(w, "only .ppt and .pptx files are accepted", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	hash := sha256.Sum256(data)
	checksum := hex.EncodeToString(hash[:])

	if existing, err := database.GetPresentationByChecksum(db, checksum); err == nil && existing != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(existing)
		return
	}

	pres := parser.Parse(data, header.Filename, int64(len(data)), time.Now())

	id, err := database.SavePresentation(db, pres, checksum)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if aiClient != nil {
		go summarizeInBackground(id, pres)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		ID       int    `json:"id"`
		Filename string `json:"filename"`
	}{id, header.Filename})
}

func summarizeInBackground(id int, pres *model.Presentation) {
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
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return
	}

	summary, usage, err := aiClient.SummarizeText(context.Background(), text)
	if err != nil {
		log.Printf("summarize failed for %d: %v", id, err)
		return
	}
	if err := database.UpdatePresentationSummary(db, id, summary); err != nil {
		log.Printf("failed to store summary for %d: %v", id, err)
	}
	if err := database.LogAIUsage(db, &database.AIUsage{
		Provider:         "gemini",
		Model:            aiClient.ModelName(),
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}); err != nil {
		log.Printf("failed to log AI usage for %d: %v", id, err)
	}
}

func handlePresentationsList(w http.ResponseWriter, r *http.Request) {
	presentations, err := database.ListPresentations(db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presentations)
}

func handlePresentationByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/presentations/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	stored, err := database.GetPresentationByID(db, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(stored.Document)
}

func handleCapabilities(w http.ResponseWriter, r *http.Request) {
	resource := strings.TrimPrefix(r.URL.Path, "/capabilities")
	resource = strings.TrimPrefix(resource, "/")
	w.Header().Set("Content-Type", "application/json")

	if resource == "" {
		codes, err := catalog.GetAllCatalogs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(struct {
			Resources []string `json:"resources"`
		}{codes})
		return
	}

	body, err := catalog.GetCatalogMetadata(resource)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	io.WriteString(w, body)
}

// handleUsage reports the summed cost column of every LogAIUsage row.
// The observer and upload path log token counts without setting Cost,
// so the rows they write add zero to this total.
func handleUsage(w http.ResponseWriter, r *http.Request) {
	total, err := database.GetTotalAICost(db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		TotalCost float64 `json:"total_cost"`
	}{total})
}

func handleAbout(w http.ResponseWriter, r *http.Request) {
	raw, err := aboutDocs.ReadFile("docs/about.md")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	html := blackfriday.Run(raw)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
