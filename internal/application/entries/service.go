package entries

import (
	"context"

	"github.com/shukatsu-tools/es-analyzer/internal/domain/ai"
	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
)

// Service implements use-cases untuk ES entries.
// Stateless selain connection pool di repo; aman dipakai concurrent.
type Service struct {
	Repo     domain.Repository
	Analyzer ai.Analyzer
}

//
// ==== USE CASES ====
//

// Command untuk analyze request
type AnalyzeCommand struct {
	QuestionType string
	QuestionText string
	Content      string
	WordCount    int
	CompanyName  *string
	Industry     *string
}

// AnalyzeResult gabungan entry + analysis untuk response
type AnalyzeResult struct {
	Entry    *domain.Entry    `json:"es_entry"`
	Analysis *domain.Analysis `json:"analysis"`
}

// Analyze simpan entry → panggil scorer → simpan analysis.
// Kalau scorer gagal setelah entry tersimpan, entry dibiarkan tanpa analysis
// (orphan yang diterima, tidak ada kompensasi).
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*AnalyzeResult, error) {
	entry := &domain.Entry{
		QuestionType: cmd.QuestionType,
		QuestionText: cmd.QuestionText,
		Content:      cmd.Content,
		WordCount:    cmd.WordCount,
		CompanyName:  cmd.CompanyName,
		Industry:     cmd.Industry,
	}
	if err := s.Repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	in := ai.Input{
		QuestionType: cmd.QuestionType,
		QuestionText: cmd.QuestionText,
		Content:      cmd.Content,
	}
	if cmd.CompanyName != nil {
		in.CompanyName = *cmd.CompanyName
	}
	if cmd.Industry != nil {
		in.Industry = *cmd.Industry
	}

	res, err := s.Analyzer.Analyze(ctx, in)
	if err != nil {
		return nil, err
	}

	analysis := &domain.Analysis{
		EntryID:             entry.ID,
		LogicScore:          res.LogicScore,
		SpecificityScore:    res.SpecificityScore,
		ReadabilityScore:    res.ReadabilityScore,
		ConsistencyScore:    res.ConsistencyScore,
		StructureType:       res.StructureType,
		StructureEvaluation: res.StructureEvaluation,
		ImprovementPoints:   res.ImprovementPoints,
		ImprovedContent:     res.ImprovedContent,
	}
	if err := s.Repo.CreateAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	return &AnalyzeResult{Entry: entry, Analysis: analysis}, nil
}

// Get ambil 1 entry + analysis-nya
func (s *Service) Get(ctx context.Context, id domain.EntryID) (*AnalyzeResult, error) {
	entry, err := s.Repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}

	analysis, err := s.Repo.GetAnalysisByEntryID(ctx, id)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, domain.ErrAnalysisNotFound
	}

	return &AnalyzeResult{Entry: entry, Analysis: analysis}, nil
}

// List ambil entries terbaru dulu, dengan atau tanpa analysis
func (s *Service) List(ctx context.Context, skip, limit int) ([]*domain.Entry, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.ListEntries(ctx, skip, limit)
}

// History ambil join entry + score; hanya entry yang sudah punya analysis
func (s *Service) History(ctx context.Context, skip, limit int) ([]*domain.HistoryItem, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListHistory(ctx, skip, limit)
}
