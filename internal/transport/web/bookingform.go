package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/HackerShabi/hotelwebsite/internal/booking"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
)

const dateLayout = "2006-01-02"

// draftFields lists every form input the wizard reducer accepts, in the order
// they are applied when a posted form is replayed onto a fresh wizard.
var draftFields = []string{
	"checkIn",
	"checkOut",
	"guests",
	"firstName",
	"lastName",
	"email",
	"phone",
	"specialRequests",
	"paymentMethod",
}

type bookingData struct {
	Hotel           catalog.HotelInfo
	Room            catalog.Room
	Step            int
	StepTitle       string
	CheckIn         string
	CheckOut        string
	Guests          int
	GuestOptions    []int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	SpecialRequests string
	PaymentMethod   booking.PaymentMethod
	PaymentMethods  []booking.PaymentMethod
	Nights          int
	Subtotal        float64
	Tax             float64
	Total           float64
	BookingID       string
	FieldErrors     map[string][]string
	Banner          string
}

func (s *Server) buildBookingData(wiz *booking.Wizard, fieldErrors map[string][]string, banner string) bookingData {
	draft := wiz.Draft()
	room := wiz.Room()

	options := make([]int, 0, room.MaxGuests)
	for i := 1; i <= room.MaxGuests; i++ {
		options = append(options, i)
	}

	data := bookingData{
		Hotel:           s.content.Hotel,
		Room:            room,
		Step:            int(wiz.Step()),
		StepTitle:       wiz.Step().String(),
		Guests:          draft.Guests,
		GuestOptions:    options,
		FirstName:       draft.FirstName,
		LastName:        draft.LastName,
		Email:           draft.Email,
		Phone:           draft.Phone,
		SpecialRequests: draft.SpecialRequests,
		PaymentMethod:   draft.PaymentMethod,
		PaymentMethods:  booking.PaymentMethods(),
		Nights:          wiz.Nights(),
		Subtotal:        wiz.Subtotal(),
		Tax:             wiz.Tax(),
		Total:           wiz.Total(),
		FieldErrors:     fieldErrors,
		Banner:          banner,
	}

	if !draft.CheckIn.IsZero() {
		data.CheckIn = draft.CheckIn.Format(dateLayout)
	}

	if !draft.CheckOut.IsZero() {
		data.CheckOut = draft.CheckOut.Format(dateLayout)
	}

	if confirmed := wiz.Confirmed(); confirmed != nil {
		data.BookingID = confirmed.BookingID
	}

	return data
}

// bookingHandler opens the wizard for the room named in the query string. An
// unknown id is a normal outcome and gets the terminal not-found view; no
// wizard state is constructed for it.
func (s *Server) bookingHandler(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")

	room, ok := s.content.RoomByID(roomID)
	if !ok {
		s.renderRoomNotFound(w)

		return
	}

	wiz := booking.New(room)

	s.render(w, http.StatusOK, "booking.html", s.buildBookingData(wiz, nil, ""))
}

func (s *Server) renderRoomNotFound(w http.ResponseWriter) {
	s.render(w, http.StatusNotFound, "booking_notfound.html", struct {
		Hotel catalog.HotelInfo
	}{Hotel: s.content.Hotel})
}

// bookingSubmitHandler replays the posted draft onto a fresh wizard, walks it
// forward to the step the form claims (validation gates every hop, so a
// forged step number cannot skip ahead), then performs the requested action.
func (s *Server) bookingSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	room, ok := s.content.RoomByID(r.PostFormValue("roomId"))
	if !ok {
		s.renderRoomNotFound(w)

		return
	}

	wiz := booking.New(room)

	fieldErrors := make(map[string][]string)

	for _, field := range draftFields {
		if !r.PostForm.Has(field) {
			continue
		}

		err := wiz.Apply(field, r.PostFormValue(field))
		if inputErr := booking.IsInputError(err); inputErr != nil {
			for name, msgs := range inputErr.Fields() {
				fieldErrors[name] = append(fieldErrors[name], msgs...)
			}

			continue
		}

		if err != nil {
			s.l.LogErrorf("Could not apply draft field %v: %v", field, err.Error())
		}
	}

	targetStep, err := strconv.Atoi(r.PostFormValue("step"))
	if err != nil || targetStep < int(booking.StepDates) {
		targetStep = int(booking.StepDates)
	}

	if targetStep > int(booking.StepPayment) {
		targetStep = int(booking.StepPayment)
	}

	for int(wiz.Step()) < targetStep {
		if err := wiz.Next(); err != nil {
			break
		}
	}

	if len(fieldErrors) > 0 {
		s.render(w, http.StatusBadRequest, "booking.html", s.buildBookingData(wiz, fieldErrors, ""))

		return
	}

	switch r.PostFormValue("action") {
	case "prev":
		// moving back from the first step is silently ignored
		_ = wiz.Prev()
	case "submit":
		s.submitWizard(w, r, wiz)

		return
	default: // next
		err := wiz.Next()
		if inputErr := booking.IsInputError(err); inputErr != nil {
			s.render(w, http.StatusBadRequest, "booking.html", s.buildBookingData(wiz, inputErr.Fields(), ""))

			return
		}
	}

	s.render(w, http.StatusOK, "booking.html", s.buildBookingData(wiz, nil, ""))
}

func (s *Server) submitWizard(w http.ResponseWriter, r *http.Request, wiz *booking.Wizard) {
	err := wiz.Submit(r.Context(), s.apiClient)

	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.render(w, http.StatusBadRequest, "booking.html", s.buildBookingData(wiz, inputErr.Fields(), ""))

		return
	}

	if submitErr := booking.IsSubmitError(err); submitErr != nil {
		// draft and step survive so the guest can retry as-is
		s.render(w, http.StatusBadGateway, "booking.html", s.buildBookingData(wiz, nil, submitErr.Error()))

		return
	}

	if errors.Is(err, booking.ErrWrongStep) {
		s.render(w, http.StatusBadRequest, "booking.html", s.buildBookingData(wiz, nil, "complete the previous steps first"))

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not submit booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.render(w, http.StatusOK, "booking_confirmed.html", s.buildBookingData(wiz, nil, ""))
}
