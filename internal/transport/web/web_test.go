package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/HackerShabi/hotelwebsite/internal/admin"
	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

func newTestServer(t *testing.T, backendURL string) *Server {
	t.Helper()

	content, err := catalog.LoadContent("")
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}

	l := logger.New(log.New(io.Discard, "", 0))
	client := api.New(api.Config{L: l, BaseURL: backendURL})

	srv, err := New(context.Background(), Conf{
		L:                l,
		ServerLogger:     log.New(io.Discard, "", 0),
		Host:             "localhost",
		Port:             "0",
		LivenessEndpoint: "/healthz",
	}, content, client, admin.New(l, client))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return srv
}

// stubBackend answers every backend route with a small fixed dataset.
func stubBackend(t *testing.T) *httptest.Server {
	t.Helper()

	ok := func(w http.ResponseWriter, data any) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/rooms", func(w http.ResponseWriter, _ *http.Request) {
		ok(w, []map[string]any{
			{"id": "skyline-penthouse", "title": "Skyline Penthouse", "price": 599, "maxGuests": 4, "available": true},
		})
	})
	mux.HandleFunc("GET /api/services", func(w http.ResponseWriter, _ *http.Request) {
		ok(w, []map[string]any{
			{"id": "spa", "title": "Rooftop Spa", "description": "Open daily.", "available": true},
		})
	})
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, _ *http.Request) {
		ok(w, []map[string]any{
			{"bookingId": "bk-1", "guestName": "John Doe", "guestEmail": "john.doe@example.com", "bookingStatus": "confirmed"},
			{"bookingId": "bk-2", "guestName": "Jane Roe", "guestEmail": "jane@example.org", "bookingStatus": "cancelled"},
		})
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		ok(w, map[string]any{"bookingId": "bk-42", "roomId": "deluxe-suite"})
	})
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, _ *http.Request) {
		ok(w, map[string]any{"totalBookings": 2, "totalRevenue": 1500.0})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// deadBackend returns a URL nothing is listening on.
func deadBackend(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	return srv.URL
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Srv().Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func postForm(s *Server, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Srv().Handler.ServeHTTP(rec, req)

	return rec
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status: got %d, want %d\nbody: %s", rec.Code, want, rec.Body.String())
	}
}

func wantContains(t *testing.T, rec *httptest.ResponseRecorder, parts ...string) {
	t.Helper()

	for _, part := range parts {
		if !strings.Contains(rec.Body.String(), part) {
			t.Errorf("body missing %q", part)
		}
	}
}

func wantNotContains(t *testing.T, rec *httptest.ResponseRecorder, parts ...string) {
	t.Helper()

	for _, part := range parts {
		if strings.Contains(rec.Body.String(), part) {
			t.Errorf("body unexpectedly contains %q", part)
		}
	}
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	wantStatus(t, get(s, "/healthz"), http.StatusNoContent)
}

func TestHomeShowsBackendRooms(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	rec := get(s, "/")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Skyline Penthouse", "Rooftop Spa")
	wantNotContains(t, rec, "Live availability is temporarily unavailable.")
}

func TestHomeFallsBackWhenBackendDown(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Live availability is temporarily unavailable.", "Deluxe Suite")
}

func TestRoomsPageDefaults(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/rooms")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Deluxe Suite", "Presidential Suite", "Ocean View Room", "Family Suite")
}

func TestRoomsPagePriceCeiling(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/rooms?maxPrice=300&sort=price-low")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Ocean View Room", "Deluxe Suite")
	wantNotContains(t, rec, "Presidential Suite", "Family Suite")
}

func TestRoomsPageSearch(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/rooms?search=family")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Family Suite")
	wantNotContains(t, rec, "Ocean View Room")
}

func TestBookingUnknownRoom(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/booking?roomId=nonexistent")
	wantStatus(t, rec, http.StatusNotFound)
	wantContains(t, rec, "Room Not Found")
	wantNotContains(t, rec, "Step 1 of 3")
}

func TestBookingOpensOnDatesStep(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/booking?roomId=deluxe-suite")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Step 1 of 3", "Deluxe Suite")
}

func TestBookingNextAdvancesWithValidDates(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := postForm(s, "/booking", url.Values{
		"roomId":   {"deluxe-suite"},
		"step":     {"1"},
		"checkIn":  {"2024-01-15"},
		"checkOut": {"2024-01-18"},
		"guests":   {"2"},
		"action":   {"next"},
	})
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Step 2 of 3", "Guest Details")
}

func TestBookingNextRefusedWithoutDates(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := postForm(s, "/booking", url.Values{
		"roomId":   {"deluxe-suite"},
		"step":     {"1"},
		"checkIn":  {"2024-01-15"},
		"checkOut": {""},
		"action":   {"next"},
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantContains(t, rec, "Step 1 of 3", "select a check-out date")
}

func TestBookingForgedStepCannotSkipAhead(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	// dates only, but the form claims the payment step
	rec := postForm(s, "/booking", url.Values{
		"roomId":   {"deluxe-suite"},
		"step":     {"3"},
		"checkIn":  {"2024-01-15"},
		"checkOut": {"2024-01-18"},
		"action":   {"submit"},
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantContains(t, rec, "complete the previous steps first")
	wantNotContains(t, rec, "Booking Confirmed!")
}

func fullDraftForm() url.Values {
	return url.Values{
		"roomId":          {"deluxe-suite"},
		"step":            {"3"},
		"checkIn":         {"2024-01-15"},
		"checkOut":        {"2024-01-18"},
		"guests":          {"2"},
		"firstName":       {"John"},
		"lastName":        {"Doe"},
		"email":           {"john.doe@example.com"},
		"phone":           {"+1 (555) 123-4567"},
		"specialRequests": {""},
		"paymentMethod":   {"credit-card"},
		"action":          {"submit"},
	}
}

func TestBookingSubmitSuccess(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	rec := postForm(s, "/booking", fullDraftForm())
	wantStatus(t, rec, http.StatusOK)
	// 3 nights at 299 plus 12% tax
	wantContains(t, rec, "Booking Confirmed!", "bk-42", "John Doe", "$1004.64")
}

func TestBookingSubmitBackendFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := postForm(s, "/booking", fullDraftForm())
	wantStatus(t, rec, http.StatusBadGateway)
	wantContains(t, rec, "Step 3 of 3", "john.doe@example.com", "2024-01-15")
	wantNotContains(t, rec, "Booking Confirmed!")
}

func TestContactFormValidation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := postForm(s, "/contact", url.Values{
		"name":  {"John"},
		"email": {"john.doe@example.com"},
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantContains(t, rec, "provide a message")

	rec = postForm(s, "/contact", url.Values{
		"name":    {"John"},
		"email":   {"john.doe@example.com"},
		"message": {"Do you allow pets?"},
	})
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Message Sent")
}

func TestGalleryCategoryFilter(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/gallery?category=spa")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Relaxing spa treatment room")
	wantNotContains(t, rec, "Fine dining restaurant interior")
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	rec := get(s, "/admin")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "John Doe", "Jane Roe", "Skyline Penthouse", "$1500.00")
}

func TestAdminSearchNarrowsBookings(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	rec := get(s, "/admin?search=jane")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "Jane Roe")
	wantNotContains(t, rec, "John Doe")
}

func TestAdminStatusFilter(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, stubBackend(t).URL)

	rec := get(s, "/admin?status=cancelled")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "bk-2")
	wantNotContains(t, rec, "bk-1")
}

func TestAdminSurvivesBackendOutage(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, deadBackend(t))

	rec := get(s, "/admin")
	wantStatus(t, rec, http.StatusOK)
	wantContains(t, rec, "bookings are unavailable", "rooms are unavailable", "stats are unavailable")
}
