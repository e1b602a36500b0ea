package dto

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/resolver"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
)

// CreateBookingRequest doubles as the wire payload. Dates are calendar dates
// in 2006-01-02 form; the dateafter rule enforces a strictly positive stay
// length before anything reaches the network.
type CreateBookingRequest struct {
	GuestID  string `json:"guestId"  validate:"required"`
	RoomID   string `json:"roomId"   validate:"required"`
	CheckIn  string `json:"checkIn"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02,dateafter=CheckIn"`
}

type UpdateBookingRequest struct {
	GuestID  string `json:"guestId"  validate:"required"`
	RoomID   string `json:"roomId"   validate:"required"`
	CheckIn  string `json:"checkIn"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02,dateafter=CheckIn"`
}

// ResolvedBookingResponse is a booking denormalized for display. It is
// recomputed from the current room/guest collections on every read and never
// cached across a collection mutation.
type ResolvedBookingResponse struct {
	ID         string `json:"id"`
	GuestID    string `json:"guestId"`
	GuestName  string `json:"guestName"`
	RoomID     string `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

func (r *ResolvedBookingResponse) FromModel(booking model.Booking, guests []guestModel.Guest, rooms []roomModel.Room) {
	guestView := resolver.Guest(booking.Guest, guests)
	roomView := resolver.Room(booking.Room, rooms)

	r.ID = booking.EntityID()
	r.GuestID = booking.Guest.Identifier()
	r.GuestName = guestView.Name
	r.RoomID = booking.Room.Identifier()
	r.RoomNumber = roomView.Number
	r.RoomType = roomView.Type
	r.CheckIn = booking.CheckIn
	r.CheckOut = booking.CheckOut
}

type GetBookingsResponse struct {
	Bookings []ResolvedBookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, guests []guestModel.Guest, rooms []roomModel.Room) {
	r.Bookings = make([]ResolvedBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, guests, rooms)
	}
}
