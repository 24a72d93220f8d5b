package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
)

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// CreateEntry inserts a row and fills in the assigned id and creation timestamp.
func (r *EntryRepository) CreateEntry(ctx context.Context, e *domain.Entry) error {
	const q = `
INSERT INTO es_entries
  (question_type, question_text, content, word_count, company_name, industry, created_at)
VALUES (?,?,?,?,?,?,?);
`
	created := time.Now().UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx, q,
		e.QuestionType, e.QuestionText, e.Content, e.WordCount,
		e.CompanyName, e.Industry, created,
	)
	if err != nil {
		return fmt.Errorf("inserting es entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}

	e.ID = domain.EntryID(id)
	e.CreatedAt = created
	return nil
}

// GetEntry point lookup by id; nil when absent
func (r *EntryRepository) GetEntry(ctx context.Context, id domain.EntryID) (*domain.Entry, error) {
	const q = `
SELECT id, question_type, question_text, content, word_count, company_name, industry,
       created_at, updated_at
FROM es_entries
WHERE id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)

	var e domain.Entry
	if err := row.Scan(
		&e.ID, &e.QuestionType, &e.QuestionText, &e.Content, &e.WordCount,
		&e.CompanyName, &e.Industry, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListEntries newest first, offset/limit applied server-side
func (r *EntryRepository) ListEntries(ctx context.Context, skip, limit int) ([]*domain.Entry, error) {
	const q = `
SELECT id, question_type, question_text, content, word_count, company_name, industry,
       created_at, updated_at
FROM es_entries
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID, &e.QuestionType, &e.QuestionText, &e.Content, &e.WordCount,
			&e.CompanyName, &e.Industry, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
