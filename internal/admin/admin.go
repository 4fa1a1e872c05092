// Package admin assembles the read-only dashboard: bookings, rooms and
// aggregate stats fetched from the backend, plus a local filter over the
// fetched booking list. It mutates nothing.
package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

// ErrNotImplemented is returned by the edit/delete affordances. The reference
// dashboard shows the buttons but wires no handler; this port keeps them as
// explicit no-ops rather than inventing CRUD semantics.
var ErrNotImplemented = errors.New("operation not implemented")

// StatusAll disables the status filter.
const StatusAll = "all"

type client interface {
	ListBookings(ctx context.Context, filter api.BookingFilter) ([]api.Booking, error)
	ListRooms(ctx context.Context, filter api.RoomFilter) ([]catalog.Room, error)
	Stats(ctx context.Context) (api.Stats, error)
}

type View struct {
	l      *logger.Logger
	client client
}

func New(l *logger.Logger, client client) *View {
	return &View{l: l, client: client}
}

// Dashboard is one page view of backend state. Each section is fetched
// independently; a failed section leaves its zero value and a message in
// Errors instead of discarding the rest.
type Dashboard struct {
	Bookings []api.Booking
	Rooms    []catalog.Room
	Stats    api.Stats
	Errors   []string
}

func (v *View) Load(ctx context.Context) Dashboard {
	var dash Dashboard

	bookings, err := v.client.ListBookings(ctx, api.BookingFilter{})
	if err != nil {
		v.l.LogErrorf("Could not load bookings for dashboard: %v", err.Error())
		dash.Errors = append(dash.Errors, "bookings are unavailable")
	} else {
		dash.Bookings = bookings
	}

	rooms, err := v.client.ListRooms(ctx, api.RoomFilter{})
	if err != nil {
		v.l.LogErrorf("Could not load rooms for dashboard: %v", err.Error())
		dash.Errors = append(dash.Errors, "rooms are unavailable")
	} else {
		dash.Rooms = rooms
	}

	stats, err := v.client.Stats(ctx)
	if err != nil {
		v.l.LogErrorf("Could not load stats for dashboard: %v", err.Error())
		dash.Errors = append(dash.Errors, "stats are unavailable")
	} else {
		dash.Stats = stats
	}

	return dash
}

// FilterBookings narrows a fetched booking list: case-insensitive substring
// match on guest name, guest email or booking id, and an exact status match
// unless status is "all" or empty.
func FilterBookings(bookings []api.Booking, search, status string) []api.Booking {
	matched := make([]api.Booking, 0, len(bookings))

	search = strings.ToLower(search)

	for _, b := range bookings {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.GuestName), search) &&
			!strings.Contains(strings.ToLower(b.GuestEmail), search) &&
			!strings.Contains(strings.ToLower(b.BookingID), search) {
			continue
		}

		if status != "" && status != StatusAll && string(b.BookingStatus) != status {
			continue
		}

		matched = append(matched, b)
	}

	return matched
}

// UpdateBooking is a deliberate stub, see ErrNotImplemented.
func (v *View) UpdateBooking(_ context.Context, _ string) error {
	return ErrNotImplemented
}

// DeleteBooking is a deliberate stub, see ErrNotImplemented.
func (v *View) DeleteBooking(_ context.Context, _ string) error {
	return ErrNotImplemented
}
