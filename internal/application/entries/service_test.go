package entries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shukatsu-tools/es-analyzer/internal/domain/ai"
	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
)

// fakeRepo is an in-memory entries.Repository for service tests.
type fakeRepo struct {
	entries  []*domain.Entry
	analyses []*domain.Analysis
	nextID   int64

	createEntryErr    error
	createAnalysisErr error
}

var base = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

func (f *fakeRepo) CreateEntry(ctx context.Context, e *domain.Entry) error {
	if f.createEntryErr != nil {
		return f.createEntryErr
	}
	f.nextID++
	e.ID = domain.EntryID(f.nextID)
	e.CreatedAt = base.Add(time.Duration(f.nextID) * time.Minute)
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, id domain.EntryID) (*domain.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListEntries(ctx context.Context, skip, limit int) ([]*domain.Entry, error) {
	var out []*domain.Entry
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return slice(out, skip, limit), nil
}

func (f *fakeRepo) CreateAnalysis(ctx context.Context, a *domain.Analysis) error {
	if f.createAnalysisErr != nil {
		return f.createAnalysisErr
	}
	a.ID = int64(len(f.analyses) + 1)
	a.CreatedAt = base.Add(time.Duration(a.ID) * time.Minute)
	f.analyses = append(f.analyses, a)
	return nil
}

func (f *fakeRepo) GetAnalysisByEntryID(ctx context.Context, id domain.EntryID) (*domain.Analysis, error) {
	for _, a := range f.analyses {
		if a.EntryID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListHistory(ctx context.Context, skip, limit int) ([]*domain.HistoryItem, error) {
	var out []*domain.HistoryItem
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		a, _ := f.GetAnalysisByEntryID(ctx, e.ID)
		if a == nil {
			continue
		}
		out = append(out, &domain.HistoryItem{
			ID:               e.ID,
			QuestionType:     e.QuestionType,
			CompanyName:      e.CompanyName,
			Industry:         e.Industry,
			LogicScore:       a.LogicScore,
			SpecificityScore: a.SpecificityScore,
			ReadabilityScore: a.ReadabilityScore,
			CreatedAt:        e.CreatedAt,
		})
	}
	return slice(out, skip, limit), nil
}

func slice[T any](in []T, skip, limit int) []T {
	if skip >= len(in) {
		return nil
	}
	in = in[skip:]
	if limit < len(in) {
		in = in[:limit]
	}
	return in
}

// stubAnalyzer returns a fixed result or error.
type stubAnalyzer struct {
	result *ai.Result
	err    error
	gotIn  ai.Input
}

func (s *stubAnalyzer) Analyze(ctx context.Context, in ai.Input) (*ai.Result, error) {
	s.gotIn = in
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	return &r, nil
}

func okResult() *ai.Result {
	return &ai.Result{
		LogicScore:          85,
		SpecificityScore:    70,
		ReadabilityScore:    80,
		StructureType:       "PREP",
		StructureEvaluation: "構造は明確",
		ImprovementPoints:   []string{"数字を足す"},
		ImprovedContent:     "改善後の全文",
	}
}

func TestAnalyzeCreatesEntryAndAnalysis(t *testing.T) {
	repo := &fakeRepo{}
	analyzer := &stubAnalyzer{result: okResult()}
	svc := &Service{Repo: repo, Analyzer: analyzer}

	company := "テスト商事"
	industry := "商社"
	res, err := svc.Analyze(context.Background(), AnalyzeCommand{
		QuestionType: "志望動機",
		QuestionText: "なぜ当社ですか",
		Content:      "私は...",
		WordCount:    120,
		CompanyName:  &company,
		Industry:     &industry,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.Entry.ID == 0 {
		t.Error("entry id should be assigned")
	}
	if res.Entry.CreatedAt.IsZero() {
		t.Error("entry creation timestamp should be assigned")
	}
	if res.Analysis.EntryID != res.Entry.ID {
		t.Errorf("analysis linked to entry %d, want %d", res.Analysis.EntryID, res.Entry.ID)
	}
	if res.Analysis.LogicScore != 85 || res.Analysis.ImprovedContent == "" {
		t.Errorf("analysis payload mismatch: %+v", res.Analysis)
	}
	if analyzer.gotIn.CompanyName != company || analyzer.gotIn.Industry != industry {
		t.Errorf("optional fields not forwarded to analyzer: %+v", analyzer.gotIn)
	}
	if len(repo.entries) != 1 || len(repo.analyses) != 1 {
		t.Errorf("repo state: %d entries, %d analyses", len(repo.entries), len(repo.analyses))
	}
}

func TestAnalyzeScorerFailureLeavesOrphanEntry(t *testing.T) {
	repo := &fakeRepo{}
	cause := &ai.AnalysisError{Err: errors.New("parse failure")}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{err: cause}}

	_, err := svc.Analyze(context.Background(), AnalyzeCommand{
		QuestionType: "ガクチカ",
		QuestionText: "学生時代に力を入れたこと",
		Content:      "サークルで...",
		WordCount:    300,
	})
	if err == nil {
		t.Fatal("expected analyzer error")
	}
	var aerr *ai.AnalysisError
	if !errors.As(err, &aerr) {
		t.Errorf("error type = %T, want *ai.AnalysisError", err)
	}

	// entry stays persisted, no analysis row — accepted inconsistency
	if len(repo.entries) != 1 {
		t.Errorf("entry rows = %d, want 1", len(repo.entries))
	}
	if len(repo.analyses) != 0 {
		t.Errorf("analysis rows = %d, want 0", len(repo.analyses))
	}
}

func TestGetDistinguishesNotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{result: okResult()}}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("unknown id: err = %v, want ErrEntryNotFound", err)
	}

	// entry without analysis
	entry := &domain.Entry{QuestionType: "志望動機", QuestionText: "q", Content: "c", WordCount: 1}
	if err := repo.CreateEntry(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(context.Background(), entry.ID); !errors.Is(err, domain.ErrAnalysisNotFound) {
		t.Errorf("orphan entry: err = %v, want ErrAnalysisNotFound", err)
	}
}

func TestGetReturnsBoth(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{result: okResult()}}

	created, err := svc.Analyze(context.Background(), AnalyzeCommand{
		QuestionType: "志望動機", QuestionText: "q", Content: "c", WordCount: 10,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(context.Background(), created.Entry.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Entry.ID != created.Entry.ID || got.Analysis.ID != created.Analysis.ID {
		t.Errorf("Get returned wrong pair: %+v", got)
	}
}

func TestHistoryExcludesEntriesWithoutAnalysis(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{result: okResult()}}

	// two completed analyses
	for i := 0; i < 2; i++ {
		if _, err := svc.Analyze(context.Background(), AnalyzeCommand{
			QuestionType: "志望動機", QuestionText: "q", Content: "c", WordCount: 10,
		}); err != nil {
			t.Fatal(err)
		}
	}
	// one orphan entry
	orphan := &domain.Entry{QuestionType: "ガクチカ", QuestionText: "q", Content: "c", WordCount: 10}
	if err := repo.CreateEntry(context.Background(), orphan); err != nil {
		t.Fatal(err)
	}

	list, err := svc.History(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("history rows = %d, want 2", len(list))
	}
	for _, h := range list {
		if h.ID == orphan.ID {
			t.Error("history must not include entries without an analysis")
		}
	}
}

func TestHistoryPagination(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{result: okResult()}}

	var ids []domain.EntryID
	for i := 0; i < 3; i++ {
		res, err := svc.Analyze(context.Background(), AnalyzeCommand{
			QuestionType: "志望動機", QuestionText: "q", Content: "c", WordCount: 10,
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, res.Entry.ID)
	}

	list, err := svc.History(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("history rows = %d, want 2", len(list))
	}
	// newest first: the two most recently created
	if list[0].ID != ids[2] || list[1].ID != ids[1] {
		t.Errorf("order = [%d %d], want [%d %d]", list[0].ID, list[1].ID, ids[2], ids[1])
	}
}

func TestListNewestFirstRegardlessOfAnalysis(t *testing.T) {
	repo := &fakeRepo{}
	svc := &Service{Repo: repo, Analyzer: &stubAnalyzer{result: okResult()}}

	first := &domain.Entry{QuestionType: "a", QuestionText: "q", Content: "c", WordCount: 1}
	second := &domain.Entry{QuestionType: "b", QuestionText: "q", Content: "c", WordCount: 1}
	for _, e := range []*domain.Entry{first, second} {
		if err := repo.CreateEntry(context.Background(), e); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("entries = %d, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("expected the later entry first, got id %d", list[0].ID)
	}
}
