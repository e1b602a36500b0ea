package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestService "frontdesk/internal/domains/guest/service"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	guests  guestService.Guest
	rooms   roomService.Room
	otel    otel.Otel
}

func New(service service.Booking, guests guestService.Guest, rooms roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		guests:  guests,
		rooms:   rooms,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// GetBookings refreshes all three collections and returns bookings resolved
// against the rooms and guests as they are now.
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	// Rooms and guests first, so resolution sees current collections. A
	// dangling reference still resolves to sentinels rather than failing.
	if _, err := handler.guests.List(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list guests for booking resolution")

		response.WithError(writer, err)

		return
	}

	if _, err := handler.rooms.List(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms for booking resolution")

		response.WithError(writer, err)

		return
	}

	resolved, err := handler.service.ListResolved(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, dto.GetBookingsResponse{Bookings: resolved})
}

func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	res := dto.ResolvedBookingResponse{}
	res.FromModel(created, handler.guests.Local(), handler.rooms.Local())

	response.WithData(writer, http.StatusCreated, res)
}

func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	updated, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	res := dto.ResolvedBookingResponse{}
	res.FromModel(updated, handler.guests.Local(), handler.rooms.Local())

	response.WithData(writer, http.StatusOK, res)
}

// DeleteBooking removes a booking. The console confirms intent with the user
// and passes it along as the confirm query flag.
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	confirmed := request.URL.Query().Get(constant.RequestParamConfirm) == "true"

	if err := handler.service.Delete(ctx, id, confirmed); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}
