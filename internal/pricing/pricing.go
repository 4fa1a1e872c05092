// Package pricing derives the running totals shown in the booking summary:
// nights from a pair of calendar dates and the taxed stay total from a
// room's nightly rate.
package pricing

import (
	"math"
	"time"
)

// TaxRate is the flat tax applied on top of the room subtotal. There are no
// other fees.
const TaxRate = 0.12

const day = 24 * time.Hour

// Nights returns the number of nights between checkIn and checkOut, zero when
// either date is unset. The difference is taken as an absolute value, so an
// inverted range yields the same count as its mirror image; rejecting
// inverted input is the wizard's job, not this function's.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}

	return int(math.Ceil(float64(diff) / float64(day)))
}

// Subtotal is the untaxed room charge for the stay.
func Subtotal(nightlyRate int, checkIn, checkOut time.Time) float64 {
	return float64(nightlyRate) * float64(Nights(checkIn, checkOut))
}

// Total is the stay total including tax. The value is left unrounded;
// rounding to cents happens only at display time so reuse in further math
// does not compound errors.
func Total(nightlyRate int, checkIn, checkOut time.Time) float64 {
	return Subtotal(nightlyRate, checkIn, checkOut) * (1 + TaxRate)
}

// Tax is the tax portion of the stay total.
func Tax(nightlyRate int, checkIn, checkOut time.Time) float64 {
	return Subtotal(nightlyRate, checkIn, checkOut) * TaxRate
}
