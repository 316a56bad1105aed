package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

// HotelHandler exposes hotel CRUD over REST
type HotelHandler struct {
	hotels service.HotelService
}

func NewHotelHandler(hotels service.HotelService) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var hotel domain.Hotel
	if err := decodeBody(r, &hotel); err != nil {
		writeError(w, err)
		return
	}

	if err := h.hotels.CreateHotel(r.Context(), &hotel); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, hotel)
}

func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	hotel, err := h.hotels.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.hotels.ListHotels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotels)
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var hotel domain.Hotel
	if err := decodeBody(r, &hotel); err != nil {
		writeError(w, err)
		return
	}
	hotel.ID = id

	if err := h.hotels.UpdateHotel(r.Context(), &hotel); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.hotels.DeleteHotel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
