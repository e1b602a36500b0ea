//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"
	"frontdesk/transport/rest"

	bookingService "frontdesk/internal/domains/booking/service"
	guestService "frontdesk/internal/domains/guest/service"
	roomService "frontdesk/internal/domains/room/service"

	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	roomHandler "frontdesk/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	rest.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var stores = wire.NewSet(
	ProvideRoomStore,
	ProvideGuestStore,
	ProvideBookingStore,
)

var domains = wire.NewSet(
	roomService.New,
	guestService.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		stores,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
