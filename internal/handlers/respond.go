package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bugstore/internal/apperr"
)

type errorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data})
}

// writeError translates a service failure into the wire status. Only
// the stable code and its message go out; wrapped causes stay in logs.
func writeError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	message := "unexpected error"
	var e *apperr.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpStatus(code.Status()))
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorBody{Code: code, Message: message}})
}

func httpStatus(s apperr.Status) int {
	switch s {
	case apperr.StatusOK:
		return http.StatusOK
	case apperr.StatusCreated:
		return http.StatusCreated
	case apperr.StatusBadRequest:
		return http.StatusBadRequest
	case apperr.StatusNotFound:
		return http.StatusNotFound
	case apperr.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, apperr.New(apperr.CodeValidation, message))
}
