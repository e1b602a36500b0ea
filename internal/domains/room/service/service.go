package service

import (
	"context"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/guard"
	"frontdesk/internal/store"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/rest"

	"github.com/rs/zerolog/log"
)

// Room orchestrates the four operation verbs against the backend and applies
// successful results to the in-memory room collection.
type Room interface {
	List(ctx context.Context) ([]model.Room, error)
	Local() []model.Room
	Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (model.Room, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type serviceImpl struct {
	client rest.Client
	store  *store.Store[model.Room]
	otel   otel.Otel
}

func New(client rest.Client, store *store.Store[model.Room], otel otel.Otel) Room {
	return &serviceImpl{
		client: client,
		store:  store,
		otel:   otel,
	}
}

// List refreshes the room collection from the backend. A response that does
// not normalize to a list empties the collection instead of failing the
// page.
func (s *serviceImpl) List(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := s.client.Get(ctx, model.BasePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch rooms")

		return nil, err
	}

	normalized := rest.Normalize(raw, model.Plural)
	scope.SetAttribute(constant.OtelShapeAttributeKey, normalized.Shape.String())

	rooms, decodeErr := rest.DecodeList[model.Room](normalized)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).Msg("room listing did not normalize to a list, treating as empty")

		rooms = []model.Room{}
	}

	s.store.ReplaceAll(rooms)

	return rooms, nil
}

// Local returns the current in-memory collection without a network call.
func (s *serviceImpl) Local() []model.Room {
	return s.store.List()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if guard.RoomNumberTaken(req.Number, s.store.List(), constant.Empty) {
		return res, failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	raw, err := s.client.Post(ctx, model.BasePath, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, err
	}

	created, err := decodeRoom(raw)
	if err != nil {
		return res, err
	}

	s.store.InsertFront(created)

	return created, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if guard.RoomNumberTaken(req.Number, s.store.List(), id) {
		return res, failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	raw, err := s.client.Put(ctx, shared.JoinPath(model.BasePath, id), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, err
	}

	updated, err := decodeRoom(raw)
	if err != nil {
		return res, err
	}

	// No-op when a delete raced ahead of this update.
	s.store.Replace(id, updated)

	return updated, nil
}

// Delete requires confirmed caller intent, supplied by the presentation
// layer; the confirmation dialog itself lives there.
func (s *serviceImpl) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !confirmed {
		return failure.DeleteNotConfirmed
	}

	if _, err = s.client.Delete(ctx, shared.JoinPath(model.BasePath, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return err
	}

	s.store.RemoveByID(id)

	return nil
}

// decodeRoom reads the backend's returned entity. The server-assigned id is
// authoritative, so a body that does not carry one is rejected rather than
// papered over with a synthesized id.
func decodeRoom(raw []byte) (model.Room, error) {
	var room model.Room

	normalized := rest.Normalize(raw, model.Plural)
	if err := rest.DecodeSingle(normalized, &room); err != nil || room.EntityID() == constant.Empty {
		log.Error().Err(err).Msg("backend returned an unreadable room entity")

		return room, failure.Upstream(http.StatusBadGateway, "backend returned an unreadable room entity") // nolint:wrapcheck
	}

	return room, nil
}
