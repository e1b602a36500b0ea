package model

import (
	"bytes"
	"encoding/json"
	"strings"

	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
)

const (
	EntityName = "booking"
	Plural     = "bookings"
	BasePath   = "/bookings"
)

// RefKind tags how a booking reference arrived from the backend.
type RefKind int

const (
	// RefID is a bare server-assigned identifier.
	RefID RefKind = iota + 1
	// RefEmbedded is a populated snapshot of the referenced entity,
	// possibly stale relative to the current collection.
	RefEmbedded
)

// GuestRef points a booking at a guest, either by identifier or by an
// embedded snapshot. The variant is decided once here at the JSON boundary
// instead of branching on field shape at every call site.
type GuestRef struct {
	Kind     RefKind
	ID       string
	Snapshot *guestModel.Guest
}

// Identifier returns the referenced guest's id regardless of variant.
func (r GuestRef) Identifier() string {
	if r.ID != "" {
		return r.ID
	}

	if r.Snapshot != nil {
		return r.Snapshot.EntityID()
	}

	return ""
}

func (r *GuestRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		r.Kind = RefID

		return json.Unmarshal(trimmed, &r.ID)
	}

	var snapshot guestModel.Guest
	if err := json.Unmarshal(trimmed, &snapshot); err != nil {
		return err
	}

	r.Kind = RefEmbedded
	r.ID = snapshot.EntityID()
	r.Snapshot = &snapshot

	return nil
}

func (r GuestRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Identifier())
}

// RoomRef points a booking at a room, either by identifier or by an
// embedded snapshot.
type RoomRef struct {
	Kind     RefKind
	ID       string
	Snapshot *roomModel.Room
}

// Identifier returns the referenced room's id regardless of variant.
func (r RoomRef) Identifier() string {
	if r.ID != "" {
		return r.ID
	}

	if r.Snapshot != nil {
		return r.Snapshot.EntityID()
	}

	return ""
}

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		r.Kind = RefID

		return json.Unmarshal(trimmed, &r.ID)
	}

	var snapshot roomModel.Room
	if err := json.Unmarshal(trimmed, &snapshot); err != nil {
		return err
	}

	r.Kind = RefEmbedded
	r.ID = snapshot.EntityID()
	r.Snapshot = &snapshot

	return nil
}

func (r RoomRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Identifier())
}

// Booking is a persisted booking record. Check-in/check-out are calendar
// dates; the backend has returned both bare dates and full timestamps, so
// any time-of-day part is stripped on decode.
type Booking struct {
	ID       string
	LegacyID string
	Guest    GuestRef
	Room     RoomRef
	CheckIn  string
	CheckOut string
}

// EntityID returns the server-assigned identifier, preferring the primary
// field over the legacy alternate.
func (b Booking) EntityID() string {
	if b.ID != "" {
		return b.ID
	}

	return b.LegacyID
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string          `json:"_id"`
		LegacyID string          `json:"id"`
		GuestID  json.RawMessage `json:"guestId"`
		Guest    json.RawMessage `json:"guest"`
		RoomID   json.RawMessage `json:"roomId"`
		Room     json.RawMessage `json:"room"`
		CheckIn  string          `json:"checkIn"`
		CheckOut string          `json:"checkOut"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = raw.ID
	b.LegacyID = raw.LegacyID
	b.CheckIn = dateOnly(raw.CheckIn)
	b.CheckOut = dateOnly(raw.CheckOut)

	if err := decodeRef(raw.GuestID, raw.Guest, &b.Guest); err != nil {
		return err
	}

	return decodeRef(raw.RoomID, raw.Room, &b.Room)
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string `json:"_id,omitempty"`
		LegacyID string `json:"id,omitempty"`
		GuestID  string `json:"guestId"`
		RoomID   string `json:"roomId"`
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
	}{
		ID:       b.ID,
		LegacyID: b.LegacyID,
		GuestID:  b.Guest.Identifier(),
		RoomID:   b.Room.Identifier(),
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	})
}

// decodeRef decodes a reference that may live under the id key (as a bare id
// or a populated object) or under a separate embedded-object key. The id key
// wins when both are present.
func decodeRef[T interface{ UnmarshalJSON([]byte) error }](idRaw, embeddedRaw json.RawMessage, ref T) error {
	source := idRaw
	if len(bytes.TrimSpace(source)) == 0 || bytes.Equal(bytes.TrimSpace(source), []byte("null")) {
		source = embeddedRaw
	}

	if len(source) == 0 {
		return nil
	}

	return ref.UnmarshalJSON(source)
}

// dateOnly trims a timestamp down to its calendar date.
func dateOnly(value string) string {
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		return value[:idx]
	}

	return value
}
