package api

// PaymentStatus and BookingStatus are owned by the backend; the site only
// renders them.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no-show"
)

// Booking is a persisted reservation as the backend returns it. The site
// never re-derives or caches this state beyond the current page view.
type Booking struct {
	BookingID       string        `json:"bookingId"`
	RoomID          string        `json:"roomId"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail"`
	GuestPhone      string        `json:"guestPhone"`
	CheckInDate     string        `json:"checkInDate"`
	CheckOutDate    string        `json:"checkOutDate"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	TotalAmount     float64       `json:"totalAmount"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	BookingStatus   BookingStatus `json:"bookingStatus"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	PaymentMethod   string        `json:"paymentMethod"`
	TransactionID   string        `json:"transactionId,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

type Stats struct {
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OccupancyRate float64 `json:"occupancyRate"`
	AvgDailyRate  float64 `json:"avgDailyRate"`
}

// CreateBookingInput is the creation payload. Dates are ISO YYYY-MM-DD.
type CreateBookingInput struct {
	RoomID          string  `json:"roomId"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentMethod   string  `json:"paymentMethod"`
}

// CreateResult is the single failure contract for booking creation: an HTTP
// error status, a success:false body and a refused connection all land here
// with Success false and a non-empty Error.
type CreateResult struct {
	Success bool
	Booking *Booking
	Error   string
}

// RoomFilter and ServiceFilter mirror the backend's query parameters; nil
// pointers leave the parameter off the request.
type RoomFilter struct {
	Featured  *bool
	Available *bool
}

type ServiceFilter struct {
	Featured  *bool
	Available *bool
}

type BookingFilter struct {
	GuestEmail string
}

// Bool is a small helper for building filters in place.
func Bool(v bool) *bool {
	return &v
}
