package model

const (
	EntityName = "guest"
	Plural     = "guests"
	BasePath   = "/guests"
)

// Guest is a persisted guest record. Ids may arrive under `_id` or the
// legacy `id` key depending on the backend integration point.
type Guest struct {
	ID       string `json:"_id,omitempty"`
	LegacyID string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// EntityID returns the server-assigned identifier, preferring the primary
// field over the legacy alternate.
func (g Guest) EntityID() string {
	if g.ID != "" {
		return g.ID
	}

	return g.LegacyID
}
