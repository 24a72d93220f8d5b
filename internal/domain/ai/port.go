package ai

import "context"

// Input data satu ES yang mau dinilai
type Input struct {
	QuestionType string
	QuestionText string
	Content      string
	CompanyName  string
	Industry     string
}

// Result hasil scorer setelah dinormalisasi.
// ConsistencyScore nil kalau scorer tidak mengembalikan nilai (atau nol).
type Result struct {
	LogicScore          float64  `json:"logic_score"`
	SpecificityScore    float64  `json:"specificity_score"`
	ReadabilityScore    float64  `json:"readability_score"`
	ConsistencyScore    *float64 `json:"consistency_score,omitempty"`
	StructureType       string   `json:"structure_type"`
	StructureEvaluation string   `json:"structure_evaluation"`
	ImprovementPoints   []string `json:"improvement_points"`
	ImprovedContent     string   `json:"improved_content"`
}

// Analyzer port ke external scorer. Satu call per analyze request, tanpa retry.
type Analyzer interface {
	Analyze(ctx context.Context, in Input) (*Result, error)
}
