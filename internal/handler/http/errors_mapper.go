// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
)

const internalServerErrorMessage = "Internal Server Error"

// errorFamily maps a set of sentinels to one status code.
type errorFamily struct {
	status  int
	targets []error
}

// errorStatusTable is checked top to bottom; the first family with a target
// matching the error chain wins. Anything unmatched is a 500.
var errorStatusTable = []errorFamily{
	{
		status: http.StatusBadRequest,
		targets: []error{
			validators.ErrInvalidJSON,
			service.ErrAlreadyVerified,
			service.ErrUnsupportedImage,
			ErrInvalidPagination,
			ErrInvalidFavorite,
			ErrMissingFile,
			ErrTooManyFiles,
		},
	},
	{
		status: http.StatusUnauthorized,
		targets: []error{
			service.ErrWrongCredentials,
			service.ErrEmailNotVerified,
			service.ErrTokenIsExpiredOrInvalid,
			service.ErrSessionRevoked,
			ErrEmptyAuthorizationHeader,
			ErrInvalidAuthorizationHeader,
		},
	},
	{
		status:  http.StatusConflict,
		targets: []error{store.ErrEmailAlreadyExists},
	},
	{
		status:  http.StatusNotFound,
		targets: []error{store.ErrUserNotFound, store.ErrContactNotFound},
	},
	{
		status:  http.StatusBadRequest,
		targets: []error{store.ErrStorageValidation},
	},
	{
		status:  http.StatusNotFound,
		targets: []error{store.ErrInvalidID},
	},
}

// translateError returns the status and client message for err. Validation
// failures carry their aggregated message; other known errors carry the
// text of the matched sentinel, never the wrapped chain.
func translateError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, family := range errorStatusTable {
		for _, target := range family.targets {
			if errors.Is(err, target) {
				return family.status, target.Error()
			}
		}
	}

	return http.StatusInternalServerError, internalServerErrorMessage
}

func statusFromError(err error) int {
	status, _ := translateError(err)
	return status
}

// writeError is the only place failures are turned into responses. The full
// error is logged; the client only sees the translated message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := translateError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], routing its error to writeError.
// An error returned after the response was committed is only logged.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		err := fn(rw, r)
		if err == nil {
			return
		}

		if rw.wroteHeader {
			logger.FromRequest(r).Err(err).
				Str("uri", r.RequestURI).
				Int("status", rw.status).
				Msg("error after response was committed")
			return
		}
		h.writeError(rw, r, err)
	}
}
