package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

// InventoryHandler exposes sellable-capacity records over REST
type InventoryHandler struct {
	inventories service.InventoryService
}

func NewInventoryHandler(inventories service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventories: inventories}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var inv domain.Inventory
	if err := decodeBody(r, &inv); err != nil {
		writeError(w, err)
		return
	}

	if err := h.inventories.CreateInventory(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, inv)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	inv, err := h.inventories.GetInventory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.inventories.ListInventories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inventories)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var inv domain.Inventory
	if err := decodeBody(r, &inv); err != nil {
		writeError(w, err)
		return
	}
	inv.ID = id

	if err := h.inventories.UpdateInventory(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.inventories.DeleteInventory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type totalRoomsResponse struct {
	TotalRooms int32 `json:"total_rooms"`
}

// TotalByType sums available rooms across all dates for one room type
func (h *InventoryHandler) TotalByType(w http.ResponseWriter, r *http.Request) {
	roomTypeID, err := queryID(r, "room_type_id")
	if err != nil {
		writeError(w, err)
		return
	}

	total, err := h.inventories.TotalRoomsByType(r.Context(), roomTypeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totalRoomsResponse{TotalRooms: total})
}

// TotalByHotel sums available rooms across all dates for one hotel
func (h *InventoryHandler) TotalByHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := queryID(r, "hotel_id")
	if err != nil {
		writeError(w, err)
		return
	}

	total, err := h.inventories.TotalRoomsByHotel(r.Context(), hotelID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totalRoomsResponse{TotalRooms: total})
}
