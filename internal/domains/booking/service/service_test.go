package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
	clientMocks "frontdesk/transport/rest/mocks"
)

type bookingFixture struct {
	svc          service.Booking
	client       *clientMocks.MockClient
	bookingStore *store.Store[model.Booking]
	guestStore   *store.Store[guestModel.Guest]
	roomStore    *store.Store[roomModel.Room]
}

func newBookingService(t *testing.T) bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := clientMocks.NewMockClient(ctrl)
	bookingStore := store.New[model.Booking](nil)
	guestStore := store.New[guestModel.Guest](nil)
	roomStore := store.New[roomModel.Room](nil)

	return bookingFixture{
		svc:          service.New(mockClient, bookingStore, guestStore, roomStore, mocks.NewOtel()),
		client:       mockClient,
		bookingStore: bookingStore,
		guestStore:   guestStore,
		roomStore:    roomStore,
	}
}

func TestBookingService_List(t *testing.T) {
	f := newBookingService(t)

	f.client.EXPECT().
		Get(gomock.Any(), "/bookings").
		Return(json.RawMessage(`{"bookings":[{"_id":"b-1","guestId":"g-1","roomId":"r-1","checkIn":"2026-09-01","checkOut":"2026-09-05"}]}`), nil)

	bookings, err := f.svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "g-1", bookings[0].Guest.Identifier())
	assert.Equal(t, 1, f.bookingStore.Len())
}

func TestBookingService_ListResolved(t *testing.T) {
	f := newBookingService(t)

	f.guestStore.ReplaceAll([]guestModel.Guest{{ID: "g-1", Name: "Alice"}})
	f.roomStore.ReplaceAll([]roomModel.Room{{ID: "r-1", Number: "101", Type: roomModel.RoomTypeSingle}})

	f.client.EXPECT().
		Get(gomock.Any(), "/bookings").
		Return(json.RawMessage(`[
			{"_id":"b-1","guestId":"g-1","roomId":"r-1","checkIn":"2026-09-01","checkOut":"2026-09-05"},
			{"_id":"b-2","guestId":"g-gone","roomId":"r-gone","checkIn":"2026-10-01","checkOut":"2026-10-02"}
		]`), nil)

	resolved, err := f.svc.ListResolved(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resolved, 2)

	assert.Equal(t, "Alice", resolved[0].GuestName)
	assert.Equal(t, "101", resolved[0].RoomNumber)
	assert.Equal(t, "single", resolved[0].RoomType)

	// dangling references resolve to sentinels instead of failing the listing
	assert.Equal(t, "Unknown Guest", resolved[1].GuestName)
	assert.Equal(t, "Unknown Room", resolved[1].RoomNumber)
	assert.Equal(t, "N/A", resolved[1].RoomType)
}

func TestBookingService_ResolveLocal_TracksCollections(t *testing.T) {
	f := newBookingService(t)

	f.guestStore.ReplaceAll([]guestModel.Guest{{ID: "g-1", Name: "Alice"}})
	f.bookingStore.ReplaceAll([]model.Booking{{
		ID:       "b-1",
		Guest:    model.GuestRef{Kind: model.RefID, ID: "g-1"},
		Room:     model.RoomRef{Kind: model.RefID, ID: "r-1"},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-05",
	}})

	resolved := f.svc.ResolveLocal()
	assert.Equal(t, "Alice", resolved[0].GuestName)

	// deleting the guest changes the very next resolution
	f.guestStore.RemoveByID("g-1")

	resolved = f.svc.ResolveLocal()
	assert.Equal(t, "Unknown Guest", resolved[0].GuestName)
}

func TestBookingService_Create(t *testing.T) {
	f := newBookingService(t)

	req := dto.CreateBookingRequest{GuestID: "g-1", RoomID: "r-1", CheckIn: "2026-09-01", CheckOut: "2026-09-05"}

	f.client.EXPECT().
		Post(gomock.Any(), "/bookings", req).
		Return(json.RawMessage(`{"data":{"_id":"b-1","guestId":"g-1","roomId":"r-1","checkIn":"2026-09-01","checkOut":"2026-09-05"}}`), nil)

	created, err := f.svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "b-1", created.EntityID())
	assert.Equal(t, 1, f.bookingStore.Len())
}

func TestBookingService_Create_Invalid(t *testing.T) {
	f := newBookingService(t)

	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{
			name: "missing guest",
			req:  dto.CreateBookingRequest{RoomID: "r-1", CheckIn: "2026-09-01", CheckOut: "2026-09-05"},
		},
		{
			name: "malformed date",
			req:  dto.CreateBookingRequest{GuestID: "g-1", RoomID: "r-1", CheckIn: "09/01/2026", CheckOut: "2026-09-05"},
		},
		{
			name: "check-out not after check-in",
			req:  dto.CreateBookingRequest{GuestID: "g-1", RoomID: "r-1", CheckIn: "2026-09-05", CheckOut: "2026-09-05"},
		},
		{
			name: "check-out before check-in",
			req:  dto.CreateBookingRequest{GuestID: "g-1", RoomID: "r-1", CheckIn: "2026-09-05", CheckOut: "2026-09-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no network call is expected
			_, err := f.svc.Create(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Equal(t, failure.KindValidation, failure.KindOf(err))
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	f := newBookingService(t)

	f.bookingStore.ReplaceAll([]model.Booking{{
		ID:       "b-1",
		Guest:    model.GuestRef{Kind: model.RefID, ID: "g-1"},
		Room:     model.RoomRef{Kind: model.RefID, ID: "r-1"},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-05",
	}})

	req := dto.UpdateBookingRequest{GuestID: "g-1", RoomID: "r-2", CheckIn: "2026-09-01", CheckOut: "2026-09-03"}

	f.client.EXPECT().
		Put(gomock.Any(), "/bookings/b-1", req).
		Return(json.RawMessage(`{"_id":"b-1","guestId":"g-1","roomId":"r-2","checkIn":"2026-09-01","checkOut":"2026-09-03"}`), nil)

	updated, err := f.svc.Update(context.Background(), "b-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "r-2", updated.Room.Identifier())

	items := f.bookingStore.List()
	assert.Equal(t, "r-2", items[0].Room.Identifier())
}

func TestBookingService_Delete(t *testing.T) {
	f := newBookingService(t)

	f.bookingStore.ReplaceAll([]model.Booking{{ID: "b-1"}})

	f.client.EXPECT().
		Delete(gomock.Any(), "/bookings/b-1").
		Return(json.RawMessage(`{"message":"deleted"}`), nil)

	err := f.svc.Delete(context.Background(), "b-1", true)

	assert.NoError(t, err)
	assert.Equal(t, 0, f.bookingStore.Len())
}

func TestBookingService_Delete_Unconfirmed(t *testing.T) {
	f := newBookingService(t)

	f.bookingStore.ReplaceAll([]model.Booking{{ID: "b-1"}})

	err := f.svc.Delete(context.Background(), "b-1", false)

	assert.Error(t, err)
	assert.Equal(t, failure.KindValidation, failure.KindOf(err))
	assert.Equal(t, 1, f.bookingStore.Len())
}
