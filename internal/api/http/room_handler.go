package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

// RoomHandler exposes physical-room CRUD over REST
type RoomHandler struct {
	rooms service.RoomService
}

func NewRoomHandler(rooms service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}

	if err := h.rooms.CreateRoom(r.Context(), &room); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	room, err := h.rooms.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// List returns rooms, optionally filtered by hotel_id
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	var hotelID int32
	if raw := r.URL.Query().Get("hotel_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		hotelID = id
	}

	rooms, err := h.rooms.ListRooms(r.Context(), hotelID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	room.ID = id

	if err := h.rooms.UpdateRoom(r.Context(), &room); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.rooms.DeleteRoom(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
