package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"psp.com/discussion-picker/backend/internal/config"
	"psp.com/discussion-picker/backend/internal/handout"
	"psp.com/discussion-picker/backend/internal/pool"
	"psp.com/discussion-picker/backend/internal/questionbank"
)

type app struct {
	bank        *questionbank.Bank
	sessions    *sessionStore
	showAuthors bool
	poolOpts    []pool.Option
}

func newApp(bank *questionbank.Bank, cfg config.Config) *app {
	return &app{
		bank:        bank,
		sessions:    newSessionStore(cfg.SessionTTL()),
		showAuthors: cfg.ShowAuthors,
	}
}

func (a *app) routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(securityHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("ok")) })

	r.Get("/api/weeks", a.handleWeeks)
	r.Post("/api/sessions", a.handleCreateSession)
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Get("/", a.handleStatus)
		r.Post("/pick", a.handlePick)
		r.Post("/reset", a.handleReset)
		r.Get("/handout.pdf", a.handleHandout)
	})
	return r
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// --- Handlers ---

func (a *app) handleWeeks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.bank.Weeks())
}

type statusResp struct {
	ID    string   `json:"id"`
	Weeks []string `json:"weeks"`
	pool.Snapshot
}

func (a *app) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var weeks []string
	if raw := strings.TrimSpace(r.URL.Query().Get("week")); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if id := strings.TrimSpace(tok); a.bank.HasWeek(id) {
				weeks = append(weeks, id)
			}
		}
	}
	sess := a.sessions.create(weeks, a.bank.Questions(weeks...), a.poolOpts...)
	slog.Info("session created", "session", sess.ID, "weeks", weeks, "total", sess.pool.Status().Total)
	writeJSON(w, http.StatusCreated, statusResp{ID: sess.ID, Weeks: weeks, Snapshot: sess.pool.Status()})
}

func (a *app) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, statusResp{ID: sess.ID, Weeks: sess.Weeks, Snapshot: sess.pool.Status()})
}

type pickResp struct {
	Question questionbank.Question `json:"question"`
	pool.Snapshot
}

func (a *app) handlePick(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	q, snap, ok := sess.pool.Pick()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	slog.Debug("question picked", "session", sess.ID, "question", q.ID, "remaining", snap.Remaining)
	writeJSON(w, http.StatusOK, pickResp{Question: q, Snapshot: snap})
}

func (a *app) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	snap := sess.pool.Reset()
	slog.Info("session reset", "session", sess.ID, "total", snap.Total)
	writeJSON(w, http.StatusOK, statusResp{ID: sess.ID, Weeks: sess.Weeks, Snapshot: snap})
}

func (a *app) handleHandout(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	drawn, snap := sess.pool.DrawnStatus()
	entries := make([]handout.Entry, 0, len(drawn))
	for _, q := range drawn {
		entries = append(entries, handout.Entry{Author: q.Author, Body: q.Body, WeekLabel: q.WeekLabel})
	}
	pdfBytes, err := handout.Render(handout.Handout{
		SessionID:   sess.ID,
		Date:        now(),
		Total:       snap.Total,
		Entries:     entries,
		ShowAuthors: a.showAuthors,
	})
	if errors.Is(err, handout.ErrNothingDrawn) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		slog.Error("handout render failed", "session", sess.ID, "error", err)
		http.Error(w, "failed to generate handout", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=questions-"+sess.ID+".pdf")
	w.Write(pdfBytes)
}

// --- Helpers ---

// session resolves the {id} URL param, writing 400/404 itself on failure.
func (a *app) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}
	sess, err := a.sessions.get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
