package dto

import (
	"frontdesk/internal/domains/guest/model"
)

// CreateGuestRequest doubles as the wire payload: the backend takes the same
// field names the console submits.
type CreateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type UpdateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.EntityID()
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
}

type GetGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest) {
	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
