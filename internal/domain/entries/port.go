package entries

import "context"

// Repository port (interface untuk persistence)
// Get* mengembalikan nil tanpa error kalau row tidak ada.
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id EntryID) (*Entry, error)
	ListEntries(ctx context.Context, skip, limit int) ([]*Entry, error)

	CreateAnalysis(ctx context.Context, a *Analysis) error
	GetAnalysisByEntryID(ctx context.Context, id EntryID) (*Analysis, error)

	ListHistory(ctx context.Context, skip, limit int) ([]*HistoryItem, error)
}
