package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appentries "github.com/shukatsu-tools/es-analyzer/internal/application/entries"
	domai "github.com/shukatsu-tools/es-analyzer/internal/domain/ai"
	domain "github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
	"github.com/shukatsu-tools/es-analyzer/internal/middleware"
)

const apiVersion = "1.0.0"

type Router struct {
	svc *appentries.Service
}

// NewRouter wires the ES endpoints plus the liveness/metrics surface.
func NewRouter(svc *appentries.Service, db *sql.DB, allowedOrigins []string) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "ES Analyzer API is running",
			"version": apiVersion,
		})
	})
	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api/es", func(rt chi.Router) {
		// one OpenAI call per analyze request; bucket protects the API budget
		rt.With(middleware.RateLimitMiddleware(10, 1)).Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Get("/{entryID}", r.wrap(r.handleGet))
		rt.Get("/", r.wrap(r.handleList))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusUnprocessableEntity, verr)
				return
			}
			if errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrAnalysisNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domai.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /api/es/analyze
// Persist the entry, run the AI analysis inline, persist and return both.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body AnalyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "invalid json"}}}
	}
	if err := body.Validate(); err != nil {
		return err
	}

	result, err := r.svc.Analyze(req.Context(), appentries.AnalyzeCommand{
		QuestionType: body.QuestionType,
		QuestionText: body.QuestionText,
		Content:      body.Content,
		WordCount:    body.WordCount,
		CompanyName:  body.CompanyName,
		Industry:     body.Industry,
	})
	if err != nil {
		return err
	}

	middleware.IncrementAnalyses()
	writeJSON(w, http.StatusCreated, result)
	return nil
}

// GET /api/es/history?skip=&limit=
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	skip, limit := pagination(req, 0, 50)

	list, err := r.svc.History(req.Context(), skip, limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.HistoryItem{}
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}

// GET /api/es/{entryID}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(req, "entryID"), 10, 64)
	if err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "entryID", Message: "must be an integer"}}}
	}

	result, err := r.svc.Get(req.Context(), domain.EntryID(id))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, result)
	return nil
}

// GET /api/es/?skip=&limit=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	skip, limit := pagination(req, 0, 100)

	list, err := r.svc.List(req.Context(), skip, limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Entry{}
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}

func pagination(req *http.Request, defSkip, defLimit int) (int, int) {
	skip := defSkip
	if v := req.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	limit := defLimit
	if v := req.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
