// Package rest is the outbound transport to the hotel API: it issues the
// HTTP requests, owns timeout and header configuration, and hands back raw
// bodies for normalization.
package rest

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/guard"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Client interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Hotel.API.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.Hotel.API.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *clientImpl) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *clientImpl) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body any) (raw json.RawMessage, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelUpstreamScopeName, fmt.Sprintf("%s.%s %s", constant.OtelUpstreamScopeName, method, path))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelMethodAttributeKey: method,
		constant.OtelPathAttributeKey:   path,
	})

	var payload io.Reader

	if body != nil {
		encoded, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, failure.ValidationFromError(fmt.Errorf("failed to encode request body: %w", marshalErr)) //nolint:wrapcheck
		}

		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, failure.Transport(err) //nolint:wrapcheck
	}

	requestID := uuid.NewString()
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderRequestID, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Str("requestID", requestID).Msg("upstream request failed")

		return nil, failure.Transport(err) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.Transport(err) //nolint:wrapcheck
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := upstreamMessage(raw, resp.Status)

		log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("requestID", requestID).Str("message", msg).Msg("upstream rejected request")

		return nil, guard.ClassifyUpstream(resp.StatusCode, msg) //nolint:wrapcheck
	}

	return raw, nil
}

// upstreamMessage mines the human-readable message out of a backend error
// body, falling back to the HTTP status line.
func upstreamMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}

		if body.Error != "" {
			return body.Error
		}
	}

	return fallback
}
