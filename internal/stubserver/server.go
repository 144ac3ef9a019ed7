// Package stubserver is the local development backend for the client: the
// same /users and /expenses CRUD surface the remote gateway exposes, with no
// auth tokens, no hashing and no validation beyond existence checks.
// Integration tests run the api.Client against it.
package stubserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/fintrack/internal/expense"
	"github.com/frahmantamala/fintrack/internal/user"
	"github.com/frahmantamala/fintrack/pkg/logger"
)

type Server struct {
	db     *gorm.DB
	router chi.Router
	logger *slog.Logger
}

// New opens (or creates) the backing sqlite database and builds the router.
// Pass ":memory:" for a throwaway instance.
func New(dbPath string, logger *slog.Logger) (*Server, error) {
	if dbPath == ":memory:" {
		// keep the pool on one shared in-memory database
		dbPath = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&userRow{}, &expenseRow{}); err != nil {
		return nil, err
	}

	s := &Server{db: db, logger: logger}
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/users", s.listUsers)
	r.Post("/users", s.createUser)

	r.Get("/expenses", s.listExpenses)
	r.Post("/expenses", s.createExpense)
	r.Get("/expenses/{id}", s.getExpense)
	r.Delete("/expenses/{id}", s.deleteExpense)

	s.router = r
}

// requestLogger stamps a request-scoped logger into the context so handlers
// log with the request id attached.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		ctx := logger.Into(r.Context(), s.logger)
		ctx = logger.With(ctx, "request_id", chimiddleware.GetReqID(ctx))
		next.ServeHTTP(ww, r.WithContext(ctx))

		level := slog.LevelInfo
		if ww.Status() >= 500 {
			level = slog.LevelError
		} else if ww.Status() >= 400 {
			level = slog.LevelWarn
		}
		logger.From(ctx).Log(ctx, level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// ----------------- users -----------------

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q := s.db.Model(&userRow{})
	if username := r.URL.Query().Get("username"); username != "" {
		q = q.Where("username = ?", username)
	}

	var rows []userRow
	if err := q.Find(&rows).Error; err != nil {
		logger.From(r.Context()).Error("failed to list users", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	records := make([]user.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var rec user.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.db.Create(userRowFrom(rec)).Error; err != nil {
		logger.From(r.Context()).Error("failed to store user", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to store user")
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

// ----------------- expenses -----------------

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	q := s.db.Model(&expenseRow{})
	if userID := r.URL.Query().Get("userId"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var rows []expenseRow
	if err := q.Find(&rows).Error; err != nil {
		logger.From(r.Context()).Error("failed to list expenses", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	expenses := make([]expense.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, row.toExpense())
	}
	s.writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var e expense.Expense
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if e.CreatedAt == "" {
		e.CreatedAt = now
	}
	if e.UpdatedAt == "" {
		e.UpdatedAt = now
	}

	if err := s.db.Create(expenseRowFrom(e)).Error; err != nil {
		logger.From(r.Context()).Error("failed to store expense", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to store expense")
		return
	}
	s.writeJSON(w, http.StatusCreated, e)
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var row expenseRow
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "expense not found")
		return
	}
	if err != nil {
		logger.From(r.Context()).Error("failed to load expense", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load expense")
		return
	}
	s.writeJSON(w, http.StatusOK, row.toExpense())
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res := s.db.Delete(&expenseRow{}, "id = ?", id)
	if res.Error != nil {
		logger.From(r.Context()).Error("failed to delete expense", "error", res.Error)
		s.writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	if res.RowsAffected == 0 {
		s.writeError(w, http.StatusNotFound, "expense not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{})
}

// ----------------- responses -----------------

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]any{
		"code":    status,
		"message": message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode error response", "error", err)
	}
}
