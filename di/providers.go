package di

import (
	bookingModel "frontdesk/internal/domains/booking/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/store"
)

// The three collections are owned here, by the composition root, and start
// empty for the lifetime of the console session.

func ProvideRoomStore() *store.Store[roomModel.Room] {
	return store.New[roomModel.Room](nil)
}

func ProvideGuestStore() *store.Store[guestModel.Guest] {
	return store.New[guestModel.Guest](nil)
}

func ProvideBookingStore() *store.Store[bookingModel.Booking] {
	return store.New[bookingModel.Booking](nil)
}
