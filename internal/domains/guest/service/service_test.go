package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/internal/store"
	"frontdesk/shared/failure"
	clientMocks "frontdesk/transport/rest/mocks"
)

func newGuestService(t *testing.T, initial []model.Guest) (service.Guest, *clientMocks.MockClient, *store.Store[model.Guest]) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := clientMocks.NewMockClient(ctrl)
	guestStore := store.New(initial)

	return service.New(mockClient, guestStore, mocks.NewOtel()), mockClient, guestStore
}

func TestGuestService_List(t *testing.T) {
	svc, mockClient, guestStore := newGuestService(t, nil)

	mockClient.EXPECT().
		Get(gomock.Any(), "/guests").
		Return(json.RawMessage(`{"guests":[{"_id":"g-1","name":"Alice","email":"alice@example.com"}]}`), nil)

	guests, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, guests, 1)
	assert.Equal(t, "Alice", guests[0].Name)
	assert.Equal(t, 1, guestStore.Len())
}

func TestGuestService_Create(t *testing.T) {
	svc, mockClient, guestStore := newGuestService(t, nil)

	req := dto.CreateGuestRequest{Name: "Alice", Email: "alice@example.com", Phone: "555-0101"}

	mockClient.EXPECT().
		Post(gomock.Any(), "/guests", req).
		Return(json.RawMessage(`{"data":{"_id":"g-1","name":"Alice","email":"alice@example.com","phone":"555-0101"}}`), nil)

	created, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "g-1", created.EntityID())
	assert.Equal(t, 1, guestStore.Len())
}

func TestGuestService_Create_Invalid(t *testing.T) {
	svc, _, _ := newGuestService(t, nil)

	_, err := svc.Create(context.Background(), dto.CreateGuestRequest{Name: "Alice", Email: "not-an-email", Phone: "555-0101"})

	assert.Error(t, err)
	assert.Equal(t, failure.KindValidation, failure.KindOf(err))
}

func TestGuestService_Create_DuplicateEmail(t *testing.T) {
	svc, _, guestStore := newGuestService(t, []model.Guest{{ID: "g-1", Email: "alice@example.com"}})

	// the guard compares case-insensitively and short-circuits before any network call
	_, err := svc.Create(context.Background(), dto.CreateGuestRequest{Name: "Other Alice", Email: "ALICE@Example.com", Phone: "555-0102"})

	assert.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	assert.Equal(t, 1, guestStore.Len())
}

func TestGuestService_Update_OwnEmailNotAConflict(t *testing.T) {
	svc, mockClient, _ := newGuestService(t, []model.Guest{{ID: "g-1", Email: "alice@example.com"}})

	req := dto.UpdateGuestRequest{Name: "Alice B", Email: "alice@example.com", Phone: "555-0101"}

	mockClient.EXPECT().
		Put(gomock.Any(), "/guests/g-1", req).
		Return(json.RawMessage(`{"_id":"g-1","name":"Alice B","email":"alice@example.com","phone":"555-0101"}`), nil)

	updated, err := svc.Update(context.Background(), "g-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
}

func TestGuestService_Update_EmailTakenByAnother(t *testing.T) {
	svc, _, _ := newGuestService(t, []model.Guest{
		{ID: "g-1", Email: "alice@example.com"},
		{ID: "g-2", Email: "bob@example.com"},
	})

	_, err := svc.Update(context.Background(), "g-1", dto.UpdateGuestRequest{Name: "Alice", Email: "bob@example.com", Phone: "555-0101"})

	assert.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
}

func TestGuestService_Delete(t *testing.T) {
	svc, mockClient, guestStore := newGuestService(t, []model.Guest{{ID: "g-1", Email: "alice@example.com"}})

	mockClient.EXPECT().
		Delete(gomock.Any(), "/guests/g-1").
		Return(json.RawMessage(`{"message":"deleted"}`), nil)

	err := svc.Delete(context.Background(), "g-1", true)

	assert.NoError(t, err)
	assert.Equal(t, 0, guestStore.Len())
}

func TestGuestService_Delete_Unconfirmed(t *testing.T) {
	svc, _, guestStore := newGuestService(t, []model.Guest{{ID: "g-1", Email: "alice@example.com"}})

	err := svc.Delete(context.Background(), "g-1", false)

	assert.Error(t, err)
	assert.Equal(t, failure.KindValidation, failure.KindOf(err))
	assert.Equal(t, 1, guestStore.Len())
}
