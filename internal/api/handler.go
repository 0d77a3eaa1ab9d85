package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/fintrack/internal/config"
	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
	"github.com/gyaneshwarpardhi/fintrack/internal/summary"
)

// TransactionStore is the persistence surface the transaction routes need.
type TransactionStore interface {
	List(ctx context.Context) ([]ledger.Transaction, error)
	Get(ctx context.Context, id int64) (ledger.Transaction, error)
	Create(ctx context.Context, in ledger.CreateTransactionInput) (ledger.Transaction, error)
	Update(ctx context.Context, id int64, in ledger.UpdateTransactionInput) (ledger.Transaction, error)
	Delete(ctx context.Context, id int64) (ledger.Transaction, error)
	Len() int
}

// EventStore is the persistence surface the event routes need.
type EventStore interface {
	List(ctx context.Context) ([]ledger.Event, error)
	Create(ctx context.Context, in ledger.CreateEventInput) (ledger.Event, error)
	Delete(ctx context.Context, id int64) (ledger.Event, error)
	Len() int
}

// Handler holds all HTTP handler dependencies.
type Handler struct {
	txs    TransactionStore
	evs    EventStore
	loader *config.Loader
	now    func() time.Time
	mux    *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the clock the summary is computed against.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates an HTTP handler and registers all routes. Route set and CORS
// origins are read from the loader once; changing them needs a restart.
func New(txs TransactionStore, evs EventStore, loader *config.Loader, opts ...Option) http.Handler {
	h := &Handler{txs: txs, evs: evs, loader: loader, now: time.Now, mux: http.NewServeMux()}
	for _, opt := range opts {
		opt(h)
	}
	cfg := loader.Config()

	h.registerTransactionRoutes("/transactions")
	h.registerEventRoutes("/events")
	if cfg.Server.LegacyRoutesEnabled() {
		h.registerTransactionRoutes("/api/expenses")
		h.registerEventRoutes("/api/events")
	}

	h.mux.HandleFunc("GET /summary", h.getSummary)
	h.mux.HandleFunc("GET /categories", h.listCategories)
	h.mux.HandleFunc("POST /config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /health", h.health)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return withRequestID(withLogging(withRecovery(withCORS(h.mux, cfg.Server.CORSOrigins))))
}

func (h *Handler) registerTransactionRoutes(base string) {
	h.mux.HandleFunc("GET "+base, h.listTransactions)
	h.mux.HandleFunc("POST "+base, h.createTransaction)
	h.mux.HandleFunc("GET "+base+"/{id}", h.getTransaction)
	h.mux.HandleFunc("PUT "+base+"/{id}", h.updateTransaction)
	h.mux.HandleFunc("DELETE "+base+"/{id}", h.deleteTransaction)
}

func (h *Handler) registerEventRoutes(base string) {
	h.mux.HandleFunc("GET "+base, h.listEvents)
	h.mux.HandleFunc("POST "+base, h.createEvent)
	h.mux.HandleFunc("DELETE "+base+"/{id}", h.deleteEvent)
}

// GET /summary — aggregates recomputed from both stores.
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txs.List(r.Context())
	if err != nil {
		writeStoreError(w, r, "", err)
		return
	}
	evs, err := h.evs.List(r.Context())
	if err != nil {
		writeStoreError(w, r, "", err)
		return
	}
	now := h.now().In(h.loader.Config().Summary.Location())
	writeJSON(w, http.StatusOK, summary.Build(txs, evs, now))
}

// GET /categories — category suggestions per transaction type.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.loader.Config().Categories
	writeJSON(w, http.StatusOK, map[string][]string{
		string(ledger.Income):  nonNil(cats.Income),
		string(ledger.Expense): nonNil(cats.Expense),
	})
}

// POST /config/reload — re-read the config file now.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"version":  cfg.Version,
	})
}

// GET /health — always 200, plain text.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
