package postgres

import "database/sql"

// Repository gabungan entry + analysis repo; memenuhi entries.Repository.
type Repository struct {
	*EntryRepository
	*AnalysisRepository
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{NewEntryRepository(db), NewAnalysisRepository(db)}
}
