package api

import (
	"net/http"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
	"github.com/gyaneshwarpardhi/fintrack/internal/metrics"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	items, err := h.txs.List(r.Context())
	if err != nil {
		writeStoreError(w, r, metrics.KindTransaction, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, metrics.KindTransaction)
	if !ok {
		return
	}
	tx, err := h.txs.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, metrics.KindTransaction, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in ledger.CreateTransactionInput
	if !decodeBody(w, r, &in) {
		return
	}
	tx, err := h.txs.Create(r.Context(), in)
	if err != nil {
		writeStoreError(w, r, metrics.KindTransaction, err)
		return
	}
	metrics.RecordsCreated.WithLabelValues(metrics.KindTransaction).Inc()
	metrics.RecordsHeld.WithLabelValues(metrics.KindTransaction).Set(float64(h.txs.Len()))
	writeJSON(w, http.StatusCreated, tx)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, metrics.KindTransaction)
	if !ok {
		return
	}
	var in ledger.UpdateTransactionInput
	if !decodeBody(w, r, &in) {
		return
	}
	tx, err := h.txs.Update(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, r, metrics.KindTransaction, err)
		return
	}
	metrics.RecordsUpdated.WithLabelValues(metrics.KindTransaction).Inc()
	writeJSON(w, http.StatusOK, tx)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, metrics.KindTransaction)
	if !ok {
		return
	}
	tx, err := h.txs.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, metrics.KindTransaction, err)
		return
	}
	metrics.RecordsDeleted.WithLabelValues(metrics.KindTransaction).Inc()
	metrics.RecordsHeld.WithLabelValues(metrics.KindTransaction).Set(float64(h.txs.Len()))
	writeJSON(w, http.StatusOK, tx)
}
