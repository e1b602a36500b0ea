// Package resolver turns a booking's guest/room references into
// display-ready summaries. It only reads the passed collections and returns
// ephemeral view values; a dangling reference resolves to sentinel display
// values instead of failing, so a deleted room never breaks booking display.
package resolver

import (
	bookingModel "frontdesk/internal/domains/booking/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
)

// GuestView is the displayable summary of a booking's guest.
type GuestView struct {
	Name string
}

// RoomView is the displayable summary of a booking's room.
type RoomView struct {
	Number string
	Type   string
}

// Guest resolves a guest reference against the current guest collection. An
// embedded snapshot that carries a name is used verbatim, as last known
// good, even if stale.
func Guest(ref bookingModel.GuestRef, guests []guestModel.Guest) GuestView {
	if ref.Kind == bookingModel.RefEmbedded && ref.Snapshot != nil && ref.Snapshot.Name != "" {
		return GuestView{Name: ref.Snapshot.Name}
	}

	id := ref.Identifier()

	for _, guest := range guests {
		if matchesGuest(guest, id) {
			return GuestView{Name: guest.Name}
		}
	}

	return GuestView{Name: constant.UnknownGuestName}
}

// Room resolves a room reference against the current room collection. An
// embedded snapshot that carries a number is used verbatim.
func Room(ref bookingModel.RoomRef, rooms []roomModel.Room) RoomView {
	if ref.Kind == bookingModel.RefEmbedded && ref.Snapshot != nil && ref.Snapshot.Number != "" {
		return RoomView{Number: ref.Snapshot.Number, Type: string(ref.Snapshot.Type)}
	}

	id := ref.Identifier()

	for _, room := range rooms {
		if matchesRoom(room, id) {
			return RoomView{Number: room.Number, Type: string(room.Type)}
		}
	}

	return RoomView{Number: constant.UnknownRoomNumber, Type: constant.UnknownRoomType}
}

// Source collections may key entities under the primary or the legacy
// identifier field, so lookups accept either.
func matchesGuest(guest guestModel.Guest, id string) bool {
	return id != "" && (guest.ID == id || guest.LegacyID == id)
}

func matchesRoom(room roomModel.Room, id string) bool {
	return id != "" && (room.ID == id || room.LegacyID == id)
}
