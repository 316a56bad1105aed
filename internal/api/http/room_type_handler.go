package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

// RoomTypeHandler exposes room type CRUD over REST
type RoomTypeHandler struct {
	roomTypes service.RoomTypeService
}

func NewRoomTypeHandler(roomTypes service.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{roomTypes: roomTypes}
}

func (h *RoomTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var roomType domain.RoomType
	if err := decodeBody(r, &roomType); err != nil {
		writeError(w, err)
		return
	}

	if err := h.roomTypes.CreateRoomType(r.Context(), &roomType); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, roomType)
}

func (h *RoomTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	roomType, err := h.roomTypes.GetRoomType(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roomType)
}

func (h *RoomTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.roomTypes.ListRoomTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roomTypes)
}

func (h *RoomTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var roomType domain.RoomType
	if err := decodeBody(r, &roomType); err != nil {
		writeError(w, err)
		return
	}
	roomType.ID = id

	if err := h.roomTypes.UpdateRoomType(r.Context(), &roomType); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roomType)
}

func (h *RoomTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.roomTypes.DeleteRoomType(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
