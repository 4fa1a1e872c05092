// Package booking holds the multi-step reservation wizard: a linear state
// machine over a draft booking, with step-gated validation and derived
// pricing. It performs network I/O only on an explicit Submit.
package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/pricing"
)

const dateLayout = "2006-01-02"

type submitter interface {
	CreateBooking(ctx context.Context, input api.CreateBookingInput) api.CreateResult
}

type Wizard struct {
	room       catalog.Room
	step       Step
	draft      Draft
	submitting bool
	confirmed  *api.Booking
}

// New opens a wizard for the given room. The draft starts on the dates step
// with one guest and the default payment method, mirroring an empty form.
func New(room catalog.Room) *Wizard {
	return &Wizard{
		room: room,
		step: StepDates,
		draft: Draft{
			RoomID:        room.ID,
			Guests:        1,
			PaymentMethod: PaymentCreditCard,
		},
	}
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Draft() Draft { return w.draft }

func (w *Wizard) Room() catalog.Room { return w.room }

func (w *Wizard) Submitting() bool { return w.submitting }

func (w *Wizard) Confirmed() *api.Booking { return w.confirmed }

func (w *Wizard) Nights() int {
	return pricing.Nights(w.draft.CheckIn, w.draft.CheckOut)
}

func (w *Wizard) Subtotal() float64 {
	return pricing.Subtotal(w.room.Price, w.draft.CheckIn, w.draft.CheckOut)
}

func (w *Wizard) Tax() float64 {
	return pricing.Tax(w.room.Price, w.draft.CheckIn, w.draft.CheckOut)
}

func (w *Wizard) Total() float64 {
	return pricing.Total(w.room.Price, w.draft.CheckIn, w.draft.CheckOut)
}

// SetRoom substitutes the room mid-flow and re-clamps the guest count to the
// new capacity. Not expected in normal operation, the room is fixed on entry.
func (w *Wizard) SetRoom(room catalog.Room) {
	w.room = room
	w.draft.RoomID = room.ID
	w.draft.Guests = clampGuests(w.draft.Guests, room.MaxGuests)
}

func clampGuests(guests, maxGuests int) int {
	if guests < 1 {
		return 1
	}

	if maxGuests >= 1 && guests > maxGuests {
		return maxGuests
	}

	return guests
}

// Apply is the reducer over draft fields: (state, field, value) -> state'.
// Field names match the original form inputs. Invalid values come back as an
// InputError and leave the draft untouched.
func (w *Wizard) Apply(field, value string) error {
	if w.step == StepConfirmed {
		return ErrWrongStep
	}

	inputErr := newInputError()

	switch field {
	case "checkIn":
		date, err := parseDate(value)
		if err != nil {
			inputErr.addError("checkIn", "provide a date as YYYY-MM-DD")

			return inputErr
		}

		w.draft.CheckIn = date
	case "checkOut":
		date, err := parseDate(value)
		if err != nil {
			inputErr.addError("checkOut", "provide a date as YYYY-MM-DD")

			return inputErr
		}

		w.draft.CheckOut = date
	case "guests":
		guests, err := strconv.Atoi(value)
		if err != nil {
			inputErr.addError("guests", "provide a number of guests")

			return inputErr
		}

		w.draft.Guests = clampGuests(guests, w.room.MaxGuests)
	case "firstName":
		w.draft.FirstName = value
	case "lastName":
		w.draft.LastName = value
	case "email":
		w.draft.Email = value
	case "phone":
		w.draft.Phone = value
	case "specialRequests":
		w.draft.SpecialRequests = value
	case "paymentMethod":
		method := PaymentMethod(value)
		if !validPaymentMethod(method) {
			inputErr.addError("paymentMethod", "choose credit-card, paypal or bank-transfer")

			return inputErr
		}

		w.draft.PaymentMethod = method
	default:
		return fmt.Errorf("apply %q: %w", field, ErrUnknownField)
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateLayout, value)
}

func (w *Wizard) validateStep(step Step) error {
	inputErr := newInputError()

	switch step {
	case StepDates:
		if w.draft.CheckIn.IsZero() {
			inputErr.addError("checkIn", "select a check-in date")
		}

		if w.draft.CheckOut.IsZero() {
			inputErr.addError("checkOut", "select a check-out date")
		}
	case StepGuest:
		if w.draft.FirstName == "" {
			inputErr.addError("firstName", "provide first name")
		}

		if w.draft.LastName == "" {
			inputErr.addError("lastName", "provide last name")
		}

		if w.draft.Email == "" {
			inputErr.addError("email", "provide email")
		}

		if w.draft.Phone == "" {
			inputErr.addError("phone", "provide phone")
		}
	case StepPayment, StepConfirmed:
		// payment method always holds a valid value; submit validates the rest
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// Next advances one step when the current step validates. On validation
// failure the step is unchanged and the field errors are returned.
func (w *Wizard) Next() error {
	if w.step >= StepPayment {
		return ErrWrongStep
	}

	if err := w.validateStep(w.step); err != nil {
		return err
	}

	w.step++

	return nil
}

// Prev moves one step back. It is always allowed except on the first step and
// after confirmation.
func (w *Wizard) Prev() error {
	if w.step <= StepDates || w.step == StepConfirmed {
		return ErrWrongStep
	}

	w.step--

	return nil
}

// Submit validates the whole draft and posts it to the backend exactly once.
// A second call while a request is in flight is refused. On failure the
// wizard stays on the payment step with the draft intact; on success it
// enters the confirmed state and the draft is frozen for display.
func (w *Wizard) Submit(ctx context.Context, s submitter) error {
	if w.step != StepPayment {
		return ErrWrongStep
	}

	if w.submitting {
		return ErrSubmitInFlight
	}

	if err := w.validateStep(StepDates); err != nil {
		return err
	}

	if err := w.validateStep(StepGuest); err != nil {
		return err
	}

	inputErr := newInputError()

	if !w.draft.CheckOut.After(w.draft.CheckIn) {
		inputErr.addError("checkOut", "check-out must be after check-in")
	}

	if w.draft.Guests < 1 || w.draft.Guests > w.room.MaxGuests {
		inputErr.addError("guests", fmt.Sprintf("guests must be between 1 and %v", w.room.MaxGuests))
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	res := s.CreateBooking(ctx, api.CreateBookingInput{
		RoomID:          w.draft.RoomID,
		GuestName:       w.draft.GuestName(),
		GuestEmail:      w.draft.Email,
		GuestPhone:      w.draft.Phone,
		CheckInDate:     w.draft.CheckIn.Format(dateLayout),
		CheckOutDate:    w.draft.CheckOut.Format(dateLayout),
		NumberOfGuests:  w.draft.Guests,
		SpecialRequests: w.draft.SpecialRequests,
		TotalAmount:     w.Total(),
		PaymentMethod:   string(w.draft.PaymentMethod),
	})

	if !res.Success {
		return &SubmitError{msg: res.Error}
	}

	w.step = StepConfirmed
	w.confirmed = res.Booking

	return nil
}
