package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
)

func TestRoomResponse_FromModel(t *testing.T) {
	tests := []struct {
		name   string
		room   model.Room
		wantID string
	}{
		{
			name:   "primary id preferred",
			room:   model.Room{ID: "r-1", LegacyID: "legacy", Number: "101", Type: model.RoomTypeSingle, Price: 75},
			wantID: "r-1",
		},
		{
			name:   "legacy id as fallback",
			room:   model.Room{LegacyID: "legacy", Number: "101", Type: model.RoomTypeSingle, Price: 75},
			wantID: "legacy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.RoomResponse
			res.FromModel(tt.room)

			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, "single", res.Type)
			assert.Equal(t, 75.0, res.Price)
		})
	}
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	var res dto.GetRoomsResponse
	res.FromModels([]model.Room{
		{ID: "r-1", Number: "101"},
		{ID: "r-2", Number: "202"},
	})

	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, "r-1", res.Rooms[0].ID)
	assert.Equal(t, "r-2", res.Rooms[1].ID)
}
