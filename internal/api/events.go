package api

import (
	"net/http"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
	"github.com/gyaneshwarpardhi/fintrack/internal/metrics"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.evs.List(r.Context())
	if err != nil {
		writeStoreError(w, r, metrics.KindEvent, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var in ledger.CreateEventInput
	if !decodeBody(w, r, &in) {
		return
	}
	ev, err := h.evs.Create(r.Context(), in)
	if err != nil {
		writeStoreError(w, r, metrics.KindEvent, err)
		return
	}
	metrics.RecordsCreated.WithLabelValues(metrics.KindEvent).Inc()
	metrics.RecordsHeld.WithLabelValues(metrics.KindEvent).Set(float64(h.evs.Len()))
	writeJSON(w, http.StatusCreated, ev)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, metrics.KindEvent)
	if !ok {
		return
	}
	ev, err := h.evs.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, metrics.KindEvent, err)
		return
	}
	metrics.RecordsDeleted.WithLabelValues(metrics.KindEvent).Inc()
	metrics.RecordsHeld.WithLabelValues(metrics.KindEvent).Set(float64(h.evs.Len()))
	writeJSON(w, http.StatusOK, ev)
}
