package service

import (
	"context"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/guard"
	"frontdesk/internal/store"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/rest"

	"github.com/rs/zerolog/log"
)

// Guest orchestrates the four operation verbs against the backend and
// applies successful results to the in-memory guest collection.
type Guest interface {
	List(ctx context.Context) ([]model.Guest, error)
	Local() []model.Guest
	Create(ctx context.Context, req dto.CreateGuestRequest) (model.Guest, error)
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (model.Guest, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type serviceImpl struct {
	client rest.Client
	store  *store.Store[model.Guest]
	otel   otel.Otel
}

func New(client rest.Client, store *store.Store[model.Guest], otel otel.Otel) Guest {
	return &serviceImpl{
		client: client,
		store:  store,
		otel:   otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := s.client.Get(ctx, model.BasePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch guests")

		return nil, err
	}

	normalized := rest.Normalize(raw, model.Plural)
	scope.SetAttribute(constant.OtelShapeAttributeKey, normalized.Shape.String())

	guests, decodeErr := rest.DecodeList[model.Guest](normalized)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).Msg("guest listing did not normalize to a list, treating as empty")

		guests = []model.Guest{}
	}

	s.store.ReplaceAll(guests)

	return guests, nil
}

// Local returns the current in-memory collection without a network call.
func (s *serviceImpl) Local() []model.Guest {
	return s.store.List()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if guard.GuestEmailTaken(req.Email, s.store.List(), constant.Empty) {
		return res, failure.Conflict("guest email already exists") // nolint:wrapcheck
	}

	raw, err := s.client.Post(ctx, model.BasePath, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, err
	}

	created, err := decodeGuest(raw)
	if err != nil {
		return res, err
	}

	s.store.InsertFront(created)

	return created, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if guard.GuestEmailTaken(req.Email, s.store.List(), id) {
		return res, failure.Conflict("guest email already exists") // nolint:wrapcheck
	}

	raw, err := s.client.Put(ctx, shared.JoinPath(model.BasePath, id), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return res, err
	}

	updated, err := decodeGuest(raw)
	if err != nil {
		return res, err
	}

	// No-op when a delete raced ahead of this update.
	s.store.Replace(id, updated)

	return updated, nil
}

// Delete requires confirmed caller intent, supplied by the presentation
// layer.
func (s *serviceImpl) Delete(ctx context.Context, id string, confirmed bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !confirmed {
		return failure.DeleteNotConfirmed
	}

	if _, err = s.client.Delete(ctx, shared.JoinPath(model.BasePath, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return err
	}

	s.store.RemoveByID(id)

	return nil
}

func decodeGuest(raw []byte) (model.Guest, error) {
	var guest model.Guest

	normalized := rest.Normalize(raw, model.Plural)
	if err := rest.DecodeSingle(normalized, &guest); err != nil || guest.EntityID() == constant.Empty {
		log.Error().Err(err).Msg("backend returned an unreadable guest entity")

		return guest, failure.Upstream(http.StatusBadGateway, "backend returned an unreadable guest entity") // nolint:wrapcheck
	}

	return guest, nil
}
