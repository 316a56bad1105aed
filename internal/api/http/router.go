package http

import (
	"net/http"

	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs
type Services struct {
	Bookings    service.BookingService
	Hotels      service.HotelService
	RoomTypes   service.RoomTypeService
	Rooms       service.RoomService
	Rates       service.RateService
	Inventories service.InventoryService
	Payments    service.PaymentService
}

// NewRouter builds the REST API. Catalog reads are public; everything that
// writes, and anything tied to a caller identity, sits behind bearer auth.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	bookings := NewBookingHandler(svcs.Bookings)
	hotels := NewHotelHandler(svcs.Hotels)
	roomTypes := NewRoomTypeHandler(svcs.RoomTypes)
	rooms := NewRoomHandler(svcs.Rooms)
	rates := NewRateHandler(svcs.Rates)
	inventories := NewInventoryHandler(svcs.Inventories)
	payments := NewPaymentHandler(svcs.Payments)

	// Public catalog reads
	api.HandleFunc("/hotels", hotels.List).Methods("GET")
	api.HandleFunc("/hotels/{id:[0-9]+}", hotels.Get).Methods("GET")
	api.HandleFunc("/roomtypes", roomTypes.List).Methods("GET")
	api.HandleFunc("/roomtypes/{id:[0-9]+}", roomTypes.Get).Methods("GET")
	api.HandleFunc("/rooms", rooms.List).Methods("GET")
	api.HandleFunc("/rooms/{id:[0-9]+}", rooms.Get).Methods("GET")
	api.HandleFunc("/roomrates", rates.List).Methods("GET")
	api.HandleFunc("/roomrates/{id:[0-9]+}", rates.Get).Methods("GET")
	api.HandleFunc("/inventories", inventories.List).Methods("GET")
	api.HandleFunc("/inventories/{id:[0-9]+}", inventories.Get).Methods("GET")
	api.HandleFunc("/inventories/total-by-type", inventories.TotalByType).Methods("GET")
	api.HandleFunc("/inventories/total-by-hotel", inventories.TotalByHotel).Methods("GET")
	api.HandleFunc("/bookings/availability", bookings.Availability).Methods("GET")
	api.HandleFunc("/bookings/price", bookings.Price).Methods("GET")

	// Authenticated surface
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(tokens))

	auth.HandleFunc("/hotels", hotels.Create).Methods("POST")
	auth.HandleFunc("/hotels/{id:[0-9]+}", hotels.Update).Methods("PUT")
	auth.HandleFunc("/hotels/{id:[0-9]+}", hotels.Delete).Methods("DELETE")

	auth.HandleFunc("/roomtypes", roomTypes.Create).Methods("POST")
	auth.HandleFunc("/roomtypes/{id:[0-9]+}", roomTypes.Update).Methods("PUT")
	auth.HandleFunc("/roomtypes/{id:[0-9]+}", roomTypes.Delete).Methods("DELETE")

	auth.HandleFunc("/rooms", rooms.Create).Methods("POST")
	auth.HandleFunc("/rooms/{id:[0-9]+}", rooms.Update).Methods("PUT")
	auth.HandleFunc("/rooms/{id:[0-9]+}", rooms.Delete).Methods("DELETE")

	auth.HandleFunc("/roomrates", rates.Create).Methods("POST")
	auth.HandleFunc("/roomrates/{id:[0-9]+}", rates.Update).Methods("PUT")
	auth.HandleFunc("/roomrates/{id:[0-9]+}", rates.Delete).Methods("DELETE")

	auth.HandleFunc("/inventories", inventories.Create).Methods("POST")
	auth.HandleFunc("/inventories/{id:[0-9]+}", inventories.Update).Methods("PUT")
	auth.HandleFunc("/inventories/{id:[0-9]+}", inventories.Delete).Methods("DELETE")

	auth.HandleFunc("/payments", payments.List).Methods("GET")
	auth.HandleFunc("/payments/{id:[0-9]+}", payments.Get).Methods("GET")
	auth.HandleFunc("/payments/{id:[0-9]+}", payments.Update).Methods("PUT")

	auth.HandleFunc("/bookings", bookings.Create).Methods("POST")
	auth.HandleFunc("/bookings", bookings.List).Methods("GET")
	auth.HandleFunc("/bookings/all", bookings.ListAll).Methods("GET")
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods("GET")
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookings.Update).Methods("PUT", "PATCH")
	auth.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookings.Cancel).Methods("POST")
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookings.Delete).Methods("DELETE")

	return router
}
