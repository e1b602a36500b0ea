// Package guard holds the client-side uniqueness checks run before a
// create/update is submitted, and the post-flight classification of
// conflicts the backend reports. The pre-flight checks are advisory: they
// save an obviously-redundant round trip, but the backend stays the final
// authority on uniqueness.
package guard

import (
	"net/http"
	"regexp"
	"strings"

	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/failure"
)

// duplicateVocabulary matches the wording backends have used to report
// uniqueness violations outside of a 409 status.
var duplicateVocabulary = regexp.MustCompile(`(?i)duplicate|already exists|conflict`)

// RoomNumberTaken reports whether another room already uses the candidate
// number. Numbers compare as trimmed strings. excludeID lets an update skip
// the room being edited, so keeping its own number is not flagged.
func RoomNumberTaken(candidate string, rooms []roomModel.Room, excludeID string) bool {
	number := strings.TrimSpace(candidate)

	for _, room := range rooms {
		if excludeID != "" && room.EntityID() == excludeID {
			continue
		}

		if strings.TrimSpace(room.Number) == number {
			return true
		}
	}

	return false
}

// GuestEmailTaken reports whether another guest already uses the candidate
// email. Emails compare case-insensitively. excludeID lets an update skip
// the guest being edited.
func GuestEmailTaken(candidate string, guests []guestModel.Guest, excludeID string) bool {
	email := strings.TrimSpace(candidate)

	for _, guest := range guests {
		if excludeID != "" && guest.EntityID() == excludeID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(guest.Email), email) {
			return true
		}
	}

	return false
}

// IsDuplicateMessage reports whether a backend error message describes a
// uniqueness violation.
func IsDuplicateMessage(msg string) bool {
	return duplicateVocabulary.MatchString(msg)
}

// ClassifyUpstream turns a non-2xx backend response into a Failure. A 409,
// or a body whose message matches the duplicate vocabulary, counts as a
// Conflict even when the pre-flight check passed: the backend may see
// concurrent changes this client did not.
func ClassifyUpstream(status int, msg string) error {
	if status == http.StatusConflict || IsDuplicateMessage(msg) {
		return failure.Conflict(msg)
	}

	return failure.Upstream(status, msg)
}
