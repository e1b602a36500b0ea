package service

import (
	"context"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/store"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/rest"

	"github.com/rs/zerolog/log"
)

// Booking orchestrates booking operations and produces the denormalized
// booking rows the console displays. It reads the room and guest collections
// but never mutates them.
type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	ListResolved(ctx context.Context) ([]dto.ResolvedBookingResponse, error)
	ResolveLocal() []dto.ResolvedBookingResponse
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (model.Booking, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type serviceImpl struct {
	client     rest.Client
	store      *store.Store[model.Booking]
	guestStore *store.Store[guestModel.Guest]
	roomStore  *store.Store[roomModel.Room]
	otel       otel.Otel
}

func New(
	client rest.Client,
	bookingStore *store.Store[model.Booking],
	guestStore *store.Store[guestModel.Guest],
	roomStore *store.Store[roomModel.Room],
	otl otel.Otel,
) Booking {
	return &serviceImpl{
		client:     client,
		store:      bookingStore,
		guestStore: guestStore,
		roomStore:  roomStore,
		otel:       otl,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := s.client.Get(ctx, model.BasePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings")

		return nil, err
	}

	normalized := rest.Normalize(raw, model.Plural)
	scope.SetAttribute(constant.OtelShapeAttributeKey, normalized.Shape.String())

	bookings, decodeErr := rest.DecodeList[model.Booking](normalized)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).Msg("booking listing did not normalize to a list, treating as empty")

		bookings = []model.Booking{}
	}

	s.store.ReplaceAll(bookings)

	return bookings, nil
}

// ListResolved refreshes the booking collection and resolves every booking
// against the current room/guest collections.
func (s *serviceImpl) ListResolved(ctx context.Context) ([]dto.ResolvedBookingResponse, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.resolve(bookings), nil
}

// ResolveLocal resolves the in-memory booking collection without a network
// call. Resolution always reads the collections as they are now; nothing is
// cached across a mutation.
func (s *serviceImpl) ResolveLocal() []dto.ResolvedBookingResponse {
	return s.resolve(s.store.List())
}

func (s *serviceImpl) resolve(bookings []model.Booking) []dto.ResolvedBookingResponse {
	res := dto.GetBookingsResponse{}
	res.FromModels(bookings, s.guestStore.List(), s.roomStore.List())

	return res.Bookings
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	raw, err := s.client.Post(ctx, model.BasePath, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	created, err := decodeBooking(raw)
	if err != nil {
		return res, err
	}

	s.store.InsertFront(created)

	return created, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	raw, err := s.client.Put(ctx, shared.JoinPath(model.BasePath, id), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, err
	}

	updated, err := decodeBooking(raw)
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !confirmed {
		return failure.DeleteNotConfirmed
	}

	if _, err = s.client.Delete(ctx, shared.JoinPath(model.BasePath, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err
	}

	s.store.RemoveByID(id)

	return nil
}

func decodeBooking(raw []byte) (model.Booking, error) {
	var booking model.Booking

	normalized := rest.Normalize(raw, model.Plural)
	if err := rest.DecodeSingle(normalized, &booking); err != nil || booking.EntityID() == constant.Empty {
		log.Error().Err(err).Msg("backend returned an unreadable booking entity")

		return booking, failure.Upstream(http.StatusBadGateway, "backend returned an unreadable booking entity") // nolint:wrapcheck
	}

	return booking, nil
}
