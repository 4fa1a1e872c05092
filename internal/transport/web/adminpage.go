package web

import (
	"net/http"

	"github.com/HackerShabi/hotelwebsite/internal/admin"
	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
)

type adminData struct {
	Hotel    catalog.HotelInfo
	Stats    api.Stats
	Bookings []api.Booking
	Rooms    []catalog.Room
	Search   string
	Status   string
	Statuses []string
	Errors   []string
}

func (s *Server) adminHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	search := query.Get("search")

	status := query.Get("status")
	if status == "" {
		status = admin.StatusAll
	}

	dash := s.adminView.Load(r.Context())

	s.render(w, http.StatusOK, "admin.html", adminData{
		Hotel:    s.content.Hotel,
		Stats:    dash.Stats,
		Bookings: admin.FilterBookings(dash.Bookings, search, status),
		Rooms:    dash.Rooms,
		Search:   search,
		Status:   status,
		Statuses: []string{
			admin.StatusAll,
			string(api.BookingConfirmed),
			string(api.BookingCancelled),
			string(api.BookingCompleted),
			string(api.BookingNoShow),
		},
		Errors: dash.Errors,
	})
}
