package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
)

type AnalysisRepository struct{ db *sql.DB }

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository { return &AnalysisRepository{db: db} }

func (r *AnalysisRepository) CreateAnalysis(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO es_analyses
  (es_entry_id, logic_score, specificity_score, readability_score, consistency_score,
   structure_type, structure_evaluation, improvement_points, improved_content, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id;`

	points := a.ImprovementPoints
	if points == nil {
		points = []string{}
	}
	pointsJSON, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("marshalling improvement points: %w", err)
	}

	created := time.Now().UTC().Truncate(time.Second)

	if err := r.db.QueryRowContext(ctx, q,
		a.EntryID, a.LogicScore, a.SpecificityScore, a.ReadabilityScore, a.ConsistencyScore,
		a.StructureType, a.StructureEvaluation, pointsJSON, a.ImprovedContent, created,
	).Scan(&a.ID); err != nil {
		return fmt.Errorf("inserting es analysis: %w", err)
	}
	a.CreatedAt = created
	return nil
}

func (r *AnalysisRepository) GetAnalysisByEntryID(ctx context.Context, id domain.EntryID) (*domain.Analysis, error) {
	const q = `
SELECT id, es_entry_id, logic_score, specificity_score, readability_score, consistency_score,
       structure_type, structure_evaluation, improvement_points, improved_content, created_at
FROM es_analyses
WHERE es_entry_id=$1
ORDER BY id ASC
LIMIT 1;`

	row := r.db.QueryRowContext(ctx, q, id)

	var a domain.Analysis
	var structureType, structureEval sql.NullString
	var pointsJSON []byte
	if err := row.Scan(
		&a.ID, &a.EntryID, &a.LogicScore, &a.SpecificityScore, &a.ReadabilityScore,
		&a.ConsistencyScore, &structureType, &structureEval, &pointsJSON,
		&a.ImprovedContent, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
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

func (r *AnalysisRepository) ListHistory(ctx context.Context, skip, limit int) ([]*domain.HistoryItem, error) {
	const q = `
SELECT e.id, e.question_type, e.company_name, e.industry,
       a.logic_score, a.specificity_score, a.readability_score, e.created_at
FROM es_entries e
INNER JOIN es_analyses a ON a.es_entry_id = e.id
ORDER BY e.created_at DESC, e.id DESC
LIMIT $1 OFFSET $2;`

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
