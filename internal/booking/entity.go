package booking

import "time"

// Step is the wizard's position. The flow is linear: dates, guest details,
// payment, confirmed. There is no branching and no skipping ahead.
type Step int

const (
	StepDates Step = iota + 1
	StepGuest
	StepPayment
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepDates:
		return "Dates & Guests"
	case StepGuest:
		return "Guest Details"
	case StepPayment:
		return "Payment"
	case StepConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
)

// PaymentMethods lists the selectable options in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentPayPal, PaymentBankTransfer}
}

func validPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentBankTransfer:
		return true
	default:
		return false
	}
}

// Draft is the client-held reservation state while the wizard is open. It is
// mutated field by field through Apply and discarded (or frozen for display)
// once the backend accepts it.
type Draft struct {
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	SpecialRequests string
	PaymentMethod   PaymentMethod
}

// GuestName is the full name sent to the backend.
func (d Draft) GuestName() string {
	return d.FirstName + " " + d.LastName
}
