package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/failure"
	"frontdesk/transport/rest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) rest.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Hotel.API.BaseURL = server.URL
	cfg.Hotel.API.TimeoutSeconds = 5

	return rest.New(cfg, mocks.NewOtel())
}

func TestClient_Get(t *testing.T) {
	var gotPath, gotRequestID string

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.URL.Path
		gotRequestID = request.Header.Get("X-Request-ID")

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`[{"_id":"r-1"}]`))
	})

	raw, err := client.Get(context.Background(), "/rooms")

	assert.NoError(t, err)
	assert.Equal(t, "/rooms", gotPath)
	assert.NotEmpty(t, gotRequestID, "every request carries a correlation id")
	assert.JSONEq(t, `[{"_id":"r-1"}]`, string(raw))
}

func TestClient_Post(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		gotContentType = request.Header.Get("Content-Type")
		_ = json.NewDecoder(request.Body).Decode(&gotBody)

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"_id":"r-9","number":"901"}`))
	})

	raw, err := client.Post(context.Background(), "/rooms", map[string]string{"number": "901"})

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "901", gotBody["number"])
	assert.JSONEq(t, `{"_id":"r-9","number":"901"}`, string(raw))
}

func TestClient_ConflictStatus(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusConflict)
		_, _ = writer.Write([]byte(`{"message":"room number taken"}`))
	})

	_, err := client.Post(context.Background(), "/rooms", map[string]string{"number": "101"})

	assert.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	assert.Equal(t, "room number taken", err.Error())
}

func TestClient_ConflictVocabulary(t *testing.T) {
	// backend reports a duplicate with a 400 instead of a 409
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"error":"email already exists"}`))
	})

	_, err := client.Post(context.Background(), "/guests", map[string]string{"email": "a@b.com"})

	assert.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte(`{"message":"something broke"}`))
	})

	_, err := client.Get(context.Background(), "/bookings")

	assert.Error(t, err)
	assert.Equal(t, failure.KindNetworkOrServer, failure.KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestClient_ErrorWithoutMessageBody(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`not json`))
	})

	_, err := client.Get(context.Background(), "/rooms/missing")

	assert.Error(t, err)
	assert.Equal(t, failure.KindNetworkOrServer, failure.KindOf(err))
	assert.Contains(t, err.Error(), "404")
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	cfg := &config.Config{}
	cfg.Hotel.API.BaseURL = server.URL
	cfg.Hotel.API.TimeoutSeconds = 1

	client := rest.New(cfg, mocks.NewOtel())

	_, err := client.Get(context.Background(), "/rooms")

	assert.Error(t, err)
	assert.Equal(t, failure.KindNetworkOrServer, failure.KindOf(err))
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestClient_Delete(t *testing.T) {
	var gotMethod string

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method

		_, _ = writer.Write([]byte(`{"message":"deleted"}`))
	})

	_, err := client.Delete(context.Background(), "/rooms/r-1")

	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}
