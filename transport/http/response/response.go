// Package response renders the uniform result contract the console
// consumes: every operation answers with either an ok envelope carrying the
// entity/collection or an error envelope carrying the failure kind and a
// human-readable message.
package response

import (
	"encoding/json"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

type Result struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Status  string       `json:"status"`
	Kind    failure.Kind `json:"kind"`
	Message string       `json:"message"`
}

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WithData sends an ok envelope containing a JSON payload.
func WithData(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Result{Status: statusOK, Data: payload})
}

// WithMessage sends an ok envelope with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Status: statusOK, Message: message})
}

// WithError sends an error envelope classified by failure kind.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Error{
		Status:  statusError,
		Kind:    failure.KindOf(err),
		Message: err.Error(),
	})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Message{Status: statusError, Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Message{Status: statusError, Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
