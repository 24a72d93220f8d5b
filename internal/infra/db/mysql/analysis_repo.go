package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// CreateAnalysis inserts an analysis row linked to its entry.
// Improvement points go into the JSON column.
func (r *AnalysisRepository) CreateAnalysis(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO es_analyses
  (es_entry_id, logic_score, specificity_score, readability_score, consistency_score,
   structure_type, structure_evaluation, improvement_points, improved_content, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?);
`
	points := a.ImprovementPoints
	if points == nil {
		points = []string{}
	}
	pointsJSON, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("marshalling improvement points: %w", err)
	}

	created := time.Now().UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx, q,
		a.EntryID, a.LogicScore, a.SpecificityScore, a.ReadabilityScore, a.ConsistencyScore,
		a.StructureType, a.StructureEvaluation, pointsJSON, a.ImprovedContent, created,
	)
	if err != nil {
		return fmt.Errorf("inserting es analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}

	a.ID = id
	a.CreatedAt = created
	return nil
}

// GetAnalysisByEntryID first match by entry id (lowest analysis id); nil when absent.
// Nothing prevents a second analysis per entry; callers avoid creating duplicates.
func (r *AnalysisRepository) GetAnalysisByEntryID(ctx context.Context, id domain.EntryID) (*domain.Analysis, error) {
	const q = `
SELECT id, es_entry_id, logic_score, specificity_score, readability_score, consistency_score,
       structure_type, structure_evaluation, improvement_points, improved_content, created_at
FROM es_analyses
WHERE es_entry_id=?
ORDER BY id ASC
LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)

	a, err := scanAnalysis(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// ListHistory inner join Entry + Analysis, newest entry first.
// The inner join drops entries that have no analysis yet.
func (r *AnalysisRepository) ListHistory(ctx context.Context, skip, limit int) ([]*domain.HistoryItem, error) {
	const q = `
SELECT e.id, e.question_type, e.company_name, e.industry,
       a.logic_score, a.specificity_score, a.readability_score, e.created_at
FROM es_entries e
INNER JOIN es_analyses a ON a.es_entry_id = e.id
ORDER BY e.created_at DESC, e.id DESC
LIMIT ? OFFSET ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.HistoryItem
	for rows.Next() {
		var h domain.HistoryItem
		if err := rows.Scan(
			&h.ID, &h.QuestionType, &h.CompanyName, &h.Industry,
			&h.LogicScore, &h.SpecificityScore, &h.ReadabilityScore, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

// scanAnalysis maps one es_analyses row, decoding the JSON points column.
func scanAnalysis(scan func(dest ...any) error) (*domain.Analysis, error) {
	var a domain.Analysis
	var structureType, structureEval sql.NullString
	var pointsJSON []byte

	if err := scan(
		&a.ID, &a.EntryID, &a.LogicScore, &a.SpecificityScore, &a.ReadabilityScore,
		&a.ConsistencyScore, &structureType, &structureEval, &pointsJSON,
		&a.ImprovedContent, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.StructureType = structureType.String
	a.StructureEvaluation = structureEval.String
	a.ImprovementPoints = []string{}
	if len(pointsJSON) > 0 {
		if err := json.Unmarshal(pointsJSON, &a.ImprovementPoints); err != nil {
			return nil, fmt.Errorf("unmarshalling improvement points: %w", err)
		}
	}
	return &a, nil
}
