package dto

import (
	"frontdesk/internal/domains/room/model"
)

// CreateRoomRequest doubles as the wire payload: the backend takes the same
// field names the console submits.
type CreateRoomRequest struct {
	Number string  `json:"number" validate:"required,max=20"`
	Type   string  `json:"type"   validate:"required,oneof=single double suite"`
	Price  float64 `json:"price"  validate:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Number string  `json:"number" validate:"required,max=20"`
	Type   string  `json:"type"   validate:"required,oneof=single double suite"`
	Price  float64 `json:"price"  validate:"required,gt=0"`
}

type RoomResponse struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.EntityID()
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Price = model.Price
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
