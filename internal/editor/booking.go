package editor

import (
	"strings"
	"time"

	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/model"
)

// BookingDraft is the booking form as typed by a client or the admin.
type BookingDraft struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Message string
	Status  string
}

// BookingForm builds bookings from drafts. now stamps newly created
// bookings; nil uses time.Now.
func BookingForm(now clock.Func) Form[model.Booking, BookingDraft] {
	if now == nil {
		now = time.Now
	}
	return Form[model.Booking, BookingDraft]{
		FromRecord: func(b model.Booking) BookingDraft {
			return BookingDraft{
				Name:    b.Name,
				Email:   b.Email,
				Phone:   b.Phone,
				Date:    b.Date,
				Time:    b.Time,
				Message: b.Message,
				Status:  string(b.Status),
			}
		},
		Build: func(d BookingDraft, base model.Booking) (model.Booking, error) {
			b, err := BuildBooking(d, base)
			if err != nil {
				return b, err
			}
			if b.CreatedAt.IsZero() {
				b.CreatedAt = now()
			}
			return b, nil
		},
		Created: "Booking added successfully",
		Updated: "Booking updated successfully",
	}
}

// BuildBooking validates d into a booking. An empty status means pending.
func BuildBooking(d BookingDraft, base model.Booking) (model.Booking, error) {
	name := strings.TrimSpace(d.Name)
	email := strings.TrimSpace(d.Email)
	phone := strings.TrimSpace(d.Phone)
	date := strings.TrimSpace(d.Date)
	slot := strings.TrimSpace(d.Time)
	if name == "" || email == "" || phone == "" || date == "" || slot == "" {
		return model.Booking{}, invalid("Please fill in all required fields")
	}

	status := model.BookingPending
	if d.Status != "" {
		s, err := model.ParseBookingStatus(d.Status)
		if err != nil {
			return model.Booking{}, invalid("Please choose a valid status")
		}
		status = s
	}

	base.Name = name
	base.Email = email
	base.Phone = phone
	base.Date = date
	base.Time = slot
	base.Message = strings.TrimSpace(d.Message)
	base.Status = status
	return base, nil
}
