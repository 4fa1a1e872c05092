// Package api is the typed client for the external hotel backend. Every
// operation is single-shot: no retries, no caching, no request deduplication.
// Failures never escape as panics; they come back as wrapped sentinel errors
// or, for booking creation, inside the CreateResult shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

const (
	roomsPath    = "/api/rooms"
	servicesPath = "/api/services"
	bookingsPath = "/api/bookings"
	statsPath    = "/api/stats"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type Config struct {
	L       *logger.Logger
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	l       *logger.Logger
	baseURL string
	http    *http.Client
}

func New(conf Config) *Client {
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		l:       conf.L,
		baseURL: conf.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// get performs one GET round-trip and decodes the data field of a successful
// envelope into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path, query), nil)
	if err != nil {
		return fmt.Errorf("build request for %v: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %v: %v: %w", path, err, ErrUnreachable)
	}
	defer resp.Body.Close()

	var env envelope

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response from %v: %v: %w", path, err, ErrUnreachable)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request %v: status %v: %w", path, resp.StatusCode, ErrBackend)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}

		return fmt.Errorf("request %v: %v: %w", path, msg, ErrBackend)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data from %v: %v: %w", path, err, ErrUnreachable)
	}

	return nil
}

func setBoolParam(query url.Values, name string, value *bool) {
	if value != nil {
		query.Set(name, strconv.FormatBool(*value))
	}
}

func (c *Client) ListRooms(ctx context.Context, filter RoomFilter) ([]catalog.Room, error) {
	query := url.Values{}
	setBoolParam(query, "featured", filter.Featured)
	setBoolParam(query, "available", filter.Available)

	var rooms []catalog.Room

	if err := c.get(ctx, roomsPath, query, &rooms); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return rooms, nil
}

func (c *Client) ListServices(ctx context.Context, filter ServiceFilter) ([]catalog.Service, error) {
	query := url.Values{}
	setBoolParam(query, "featured", filter.Featured)
	setBoolParam(query, "available", filter.Available)

	var services []catalog.Service

	if err := c.get(ctx, servicesPath, query, &services); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	return services, nil
}

func (c *Client) ListBookings(ctx context.Context, filter BookingFilter) ([]Booking, error) {
	query := url.Values{}
	if filter.GuestEmail != "" {
		query.Set("guestEmail", filter.GuestEmail)
	}

	var bookings []Booking

	if err := c.get(ctx, bookingsPath, query, &bookings); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := c.get(ctx, statsPath, nil, &stats); err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// CreateBooking posts the draft to the backend. The caller always receives a
// CreateResult; a transport failure, an error status and a success:false body
// are indistinguishable in shape, only in message.
func (c *Client) CreateBooking(ctx context.Context, input CreateBookingInput) CreateResult {
	body, err := json.Marshal(input)
	if err != nil {
		return CreateResult{Error: fmt.Sprintf("encode booking: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(bookingsPath, nil), bytes.NewReader(body))
	if err != nil {
		return CreateResult{Error: fmt.Sprintf("build booking request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.l.LogErrorf("Could not reach backend to create booking: %v", err.Error())

		return CreateResult{Error: "booking service is unavailable, please try again"}
	}
	defer resp.Body.Close()

	var env envelope

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// a failing status with an unreadable body is still a plain failure
		env = envelope{}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("booking was not accepted (status %v)", resp.StatusCode)
		}

		return CreateResult{Error: msg}
	}

	var booking Booking

	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &booking); err != nil {
			c.l.LogErrorf("Could not decode created booking: %v", err.Error())

			return CreateResult{Success: true}
		}
	}

	return CreateResult{Success: true, Booking: &booking}
}
