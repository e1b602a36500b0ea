package model

const (
	EntityName = "room"
	Plural     = "rooms"
	BasePath   = "/rooms"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

// Room is a persisted room record. The backend has served ids under both
// `_id` and the legacy `id` key across integration points, so both are kept.
type Room struct {
	ID       string   `json:"_id,omitempty"`
	LegacyID string   `json:"id,omitempty"`
	Number   string   `json:"number"`
	Type     RoomType `json:"type"`
	Price    float64  `json:"price"`
}

// EntityID returns the server-assigned identifier, preferring the primary
// field over the legacy alternate.
func (r Room) EntityID() string {
	if r.ID != "" {
		return r.ID
	}

	return r.LegacyID
}
