package entries

import (
	"time"
)

// EntryID tipe untuk Entry
type EntryID int64

// Aggregate Root: Entry (satu ES yang dikirim user)
type Entry struct {
	ID           EntryID    `json:"id"`
	QuestionType string     `json:"question_type"`
	QuestionText string     `json:"question_text"`
	Content      string     `json:"content"`
	WordCount    int        `json:"word_count"`
	CompanyName  *string    `json:"company_name,omitempty"`
	Industry     *string    `json:"industry,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Analysis hasil scoring + rewrite untuk satu Entry.
// ConsistencyScore hanya terisi kalau industry diset dan scorer mengembalikan nilai.
type Analysis struct {
	ID                  int64     `json:"id"`
	EntryID             EntryID   `json:"es_entry_id"`
	LogicScore          float64   `json:"logic_score"`
	SpecificityScore    float64   `json:"specificity_score"`
	ReadabilityScore    float64   `json:"readability_score"`
	ConsistencyScore    *float64  `json:"consistency_score,omitempty"`
	StructureType       string    `json:"structure_type,omitempty"`
	StructureEvaluation string    `json:"structure_evaluation,omitempty"`
	ImprovementPoints   []string  `json:"improvement_points"`
	ImprovedContent     string    `json:"improved_content"`
	CreatedAt           time.Time `json:"created_at"`
}

// HistoryItem baris hasil join Entry + Analysis untuk list display
type HistoryItem struct {
	ID               EntryID   `json:"id"`
	QuestionType     string    `json:"question_type"`
	CompanyName      *string   `json:"company_name"`
	Industry         *string   `json:"industry"`
	LogicScore       float64   `json:"logic_score"`
	SpecificityScore float64   `json:"specificity_score"`
	ReadabilityScore float64   `json:"readability_score"`
	CreatedAt        time.Time `json:"created_at"`
}
