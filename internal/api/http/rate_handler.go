package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

// RateHandler exposes nightly-rate CRUD over REST
type RateHandler struct {
	rates service.RateService
}

func NewRateHandler(rates service.RateService) *RateHandler {
	return &RateHandler{rates: rates}
}

func (h *RateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rate domain.RoomRate
	if err := decodeBody(r, &rate); err != nil {
		writeError(w, err)
		return
	}

	if err := h.rates.CreateRate(r.Context(), &rate); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rate)
}

func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rate, err := h.rates.GetRate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rate)
}

// List returns rates, optionally filtered by room_type_id
func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	var roomTypeID int32
	if raw := r.URL.Query().Get("room_type_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		roomTypeID = id
	}

	rates, err := h.rates.ListRates(r.Context(), roomTypeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rates)
}

func (h *RateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var rate domain.RoomRate
	if err := decodeBody(r, &rate); err != nil {
		writeError(w, err)
		return
	}
	rate.ID = id

	if err := h.rates.UpdateRate(r.Context(), &rate); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.rates.DeleteRate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
