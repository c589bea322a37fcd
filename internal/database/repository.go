package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/gnemet/slidextract/internal/model"
)

// StoredPresentation is a persisted extraction result: the full
// Presentation record plus the indexed columns queries filter on.
type StoredPresentation struct {
	ID        int             `json:"id"`
	Filename  string          `json:"filename"`
	FileType  string          `json:"file_type"`
	Checksum  string          `json:"checksum"`
	AISummary string          `json:"ai_summary"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
}

type AIUsage struct {
	ID               int       `json:"id"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	Cost             float64   `json:"cost"`
	CreatedAt        time.Time `json:"created_at"`
}

// SavePresentation persists a parsed Presentation as its canonical JSON
// wire format (spec.md §6) alongside the indexed lookup columns.
func SavePresentation(db *sql.DB, p *model.Presentation, checksum string) (int, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO presentations (filename, file_type, checksum, document)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int
	err = db.QueryRow(query, p.FileName, string(p.FileType), checksum, doc).Scan(&id)
	return id, err
}

func GetPresentationByChecksum(db *sql.DB, checksum string) (*StoredPresentation, error) {
	var s StoredPresentation
	query := "SELECT id, filename, file_type, checksum, ai_summary, document, created_at FROM presentations WHERE checksum = $1"
	err := db.QueryRow(query, checksum).Scan(&s.ID, &s.Filename, &s.FileType, &s.Checksum, &s.AISummary, &s.Document, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func GetPresentationByID(db *sql.DB, id int) (*StoredPresentation, error) {
	var s StoredPresentation
	query := "SELECT id, filename, file_type, checksum, ai_summary, document, created_at FROM presentations WHERE id = $1"
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Filename, &s.FileType, &s.Checksum, &s.AISummary, &s.Document, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func UpdatePresentationSummary(db *sql.DB, id int, summary string) error {
	_, err := db.Exec("UPDATE presentations SET ai_summary = $1 WHERE id = $2", summary, id)
	return err
}

func ListPresentations(db *sql.DB) ([]StoredPresentation, error) {
	rows, err := db.Query("SELECT id, filename, file_type, checksum, ai_summary, document, created_at FROM presentations ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []StoredPresentation
	for rows.Next() {
		var s StoredPresentation
		if err := rows.Scan(&s.ID, &s.Filename, &s.FileType, &s.Checksum, &s.AISummary, &s.Document, &s.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, nil
}

func LogAIUsage(db *sql.DB, u *AIUsage) error {
	query := `
		INSERT INTO ai_usage (provider, model, prompt_tokens, completion_tokens, total_tokens, cost)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Exec(query, u.Provider, u.Model, u.PromptTokens, u.CompletionTokens, u.TotalTokens, u.Cost)
	return err
}

func GetTotalAICost(db *sql.DB) (float64, error) {
	var total float64
	err := db.QueryRow("SELECT COALESCE(SUM(cost), 0) FROM ai_usage").Scan(&total)
	return total, err
}
