package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

type fakeClient struct {
	bookings    []api.Booking
	bookingsErr error
	rooms       []catalog.Room
	roomsErr    error
	stats       api.Stats
	statsErr    error
}

func (f *fakeClient) ListBookings(context.Context, api.BookingFilter) ([]api.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeClient) ListRooms(context.Context, api.RoomFilter) ([]catalog.Room, error) {
	return f.rooms, f.roomsErr
}

func (f *fakeClient) Stats(context.Context) (api.Stats, error) {
	return f.stats, f.statsErr
}

func testView(c client) *View {
	return New(logger.New(log.New(io.Discard, "", 0)), c)
}

func testBookings() []api.Booking {
	return []api.Booking{
		{BookingID: "bk-1", GuestName: "John Doe", GuestEmail: "john.doe@example.com", BookingStatus: api.BookingConfirmed},
		{BookingID: "bk-2", GuestName: "Jane Roe", GuestEmail: "jane@example.org", BookingStatus: api.BookingCompleted},
		{BookingID: "bk-3", GuestName: "Ana Silva", GuestEmail: "ana@example.com", BookingStatus: api.BookingCancelled},
	}
}

func bookingIDs(bookings []api.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.BookingID)
	}

	return ids
}

func TestLoadAllSectionsAvailable(t *testing.T) {
	t.Parallel()

	view := testView(&fakeClient{
		bookings: testBookings(),
		rooms:    []catalog.Room{{ID: "deluxe-suite"}},
		stats:    api.Stats{TotalBookings: 3},
	})

	dash := view.Load(context.Background())

	if len(dash.Errors) != 0 {
		t.Errorf("unexpected errors: %v", dash.Errors)
	}

	if len(dash.Bookings) != 3 || len(dash.Rooms) != 1 || dash.Stats.TotalBookings != 3 {
		t.Errorf("dashboard: got %+v", dash)
	}
}

func TestLoadPartialFailureKeepsOtherSections(t *testing.T) {
	t.Parallel()

	view := testView(&fakeClient{
		bookings:    testBookings(),
		rooms:       []catalog.Room{{ID: "deluxe-suite"}},
		statsErr:    api.ErrUnreachable,
		bookingsErr: nil,
	})

	dash := view.Load(context.Background())

	if len(dash.Bookings) != 3 || len(dash.Rooms) != 1 {
		t.Errorf("healthy sections dropped: %+v", dash)
	}

	if len(dash.Errors) != 1 || dash.Errors[0] != "stats are unavailable" {
		t.Errorf("errors: got %v", dash.Errors)
	}
}

func TestLoadTotalFailure(t *testing.T) {
	t.Parallel()

	view := testView(&fakeClient{
		bookingsErr: api.ErrUnreachable,
		roomsErr:    api.ErrUnreachable,
		statsErr:    api.ErrBackend,
	})

	dash := view.Load(context.Background())

	if len(dash.Errors) != 3 {
		t.Errorf("errors: got %v, want 3 entries", dash.Errors)
	}

	if len(dash.Bookings) != 0 || len(dash.Rooms) != 0 {
		t.Errorf("failed sections carry data: %+v", dash)
	}
}

func TestFilterBookings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		search string
		status string
		want   []string
	}{
		{
			name: "no filter keeps all",
			want: []string{"bk-1", "bk-2", "bk-3"},
		},
		{
			name:   "status all keeps all",
			status: StatusAll,
			want:   []string{"bk-1", "bk-2", "bk-3"},
		},
		{
			name:   "search by name case-insensitively",
			search: "JOHN",
			want:   []string{"bk-1"},
		},
		{
			name:   "search by email domain",
			search: "example.org",
			want:   []string{"bk-2"},
		},
		{
			name:   "search by booking id",
			search: "bk-3",
			want:   []string{"bk-3"},
		},
		{
			name:   "status match",
			status: "completed",
			want:   []string{"bk-2"},
		},
		{
			name:   "search and status combined",
			search: "example.com",
			status: "cancelled",
			want:   []string{"bk-3"},
		},
		{
			name:   "nothing matches",
			search: "nobody",
			want:   []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := bookingIDs(FilterBookings(testBookings(), test.search, test.status))

			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("FilterBookings: got %v, want %v", got, test.want)
			}
		})
	}
}

func TestMutationsNotImplemented(t *testing.T) {
	t.Parallel()

	view := testView(&fakeClient{})

	if err := view.UpdateBooking(context.Background(), "bk-1"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("UpdateBooking: got %v, want ErrNotImplemented", err)
	}

	if err := view.DeleteBooking(context.Background(), "bk-1"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("DeleteBooking: got %v, want ErrNotImplemented", err)
	}
}
