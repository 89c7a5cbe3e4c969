package model

import (
	"fmt"
	"time"
)

// Booking is a styling session request.
type Booking struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Message   string        `json:"message,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// RecordID returns the booking's identifier.
func (b Booking) RecordID() int64 { return b.ID }

// WithID returns a copy of the booking carrying id.
func (b Booking) WithID(id int64) Booking {
	b.ID = id
	return b
}

// DateLabel formats the YYYY-MM-DD date for display, falling back to the raw
// value when it does not parse.
func (b Booking) DateLabel() string {
	d, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return b.Date
	}
	return d.Format("January 2, 2006")
}

// DateLayout is the wire format of Booking.Date.
const DateLayout = "2006-01-02"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking statuses.
const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every status in filter order.
var BookingStatuses = []BookingStatus{BookingConfirmed, BookingPending, BookingCancelled}

// ParseBookingStatus returns the status named by s.
func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, st := range BookingStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// DisplayName returns the capitalised status label.
func (s BookingStatus) DisplayName() string {
	switch s {
	case BookingConfirmed:
		return "Confirmed"
	case BookingPending:
		return "Pending"
	case BookingCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Upcoming reports whether a booking with this status still takes a slot.
func (s BookingStatus) Upcoming() bool {
	return s == BookingConfirmed || s == BookingPending
}

// BookingWindow is the number of days ahead a client can book.
const BookingWindow = 14

// BookableDates returns the dates offered on the booking form, starting the
// day after now.
func BookableDates(now time.Time) []string {
	dates := make([]string, 0, BookingWindow)
	for i := 1; i <= BookingWindow; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
