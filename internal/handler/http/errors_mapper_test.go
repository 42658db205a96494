// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/crypto"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	validationErr := &validators.ValidationError{Fields: []validators.FieldError{
		{Field: "email", Message: `"email" is required`},
		{Field: "password", Message: `"password" is required`},
	}}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation error", validationErr, http.StatusBadRequest, `"email" is required. "password" is required`},
		{"wrapped validation error", fmt.Errorf("decode: %w", validationErr), http.StatusBadRequest, `"email" is required. "password" is required`},
		{"invalid json", fmt.Errorf("%w: empty body", validators.ErrInvalidJSON), http.StatusBadRequest, "invalid JSON body"},
		{"already verified", service.ErrAlreadyVerified, http.StatusBadRequest, "Verification has already been passed"},
		{"unsupported image", fmt.Errorf("%w: %w", service.ErrUnsupportedImage, errors.New("image: unknown format")), http.StatusBadRequest, service.ErrUnsupportedImage.Error()},
		{"bad pagination", ErrInvalidPagination, http.StatusBadRequest, ErrInvalidPagination.Error()},
		{"wrong credentials", service.ErrWrongCredentials, http.StatusUnauthorized, "Email or password is wrong"},
		{"not verified", service.ErrEmailNotVerified, http.StatusUnauthorized, "Email is not verified"},
		{"expired token", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, crypto.ErrInvalidToken), http.StatusUnauthorized, "Not authorized"},
		{"missing header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Not authorized"},
		{"duplicate email", fmt.Errorf("creating user failed: %w", store.ErrEmailAlreadyExists), http.StatusConflict, "Email in use"},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"contact not found", fmt.Errorf("getting contact failed: %w", store.ErrContactNotFound), http.StatusNotFound, "Not found"},
		{"storage constraint", store.ErrStorageValidation, http.StatusBadRequest, store.ErrStorageValidation.Error()},
		{"malformed id", store.ErrInvalidID, http.StatusNotFound, "Not found"},
		{"driver failure", fmt.Errorf("%w: connection refused", store.ErrExecutingQuery), http.StatusInternalServerError, "Internal Server Error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := translateError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestTranslateError_PrecedenceFollowsTable(t *testing.T) {
	// an error in two families resolves to the earlier row
	both := errors.Join(store.ErrUserNotFound, service.ErrWrongCredentials)
	assert.Equal(t, http.StatusUnauthorized, statusFromError(both))

	conflictAndNotFound := errors.Join(store.ErrContactNotFound, store.ErrEmailAlreadyExists)
	assert.Equal(t, http.StatusConflict, statusFromError(conflictAndNotFound))

	validationAndAuth := errors.Join(service.ErrSessionRevoked, &validators.ValidationError{
		Fields: []validators.FieldError{{Field: "favorite", Message: "missing field favorite"}},
	})
	status, message := translateError(validationAndAuth)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing field favorite", message)
}

func TestWriteError_NeverLeaksWrappedChain(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	err := fmt.Errorf("%w: pq: password authentication failed for user \"admin\"", store.ErrExecutingQuery)

	rr := httptest.NewRecorder()
	h.writeError(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)), err)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
}

func TestHandle_RoutesErrorsToWriteError(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	ok := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	})
	failing := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		return store.ErrContactNotFound
	})

	rr := httptest.NewRecorder()
	ok(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	failing(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rr.Body.String())
}

// brokenBodyWriter accepts the header and fails every body write.
type brokenBodyWriter struct {
	*httptest.ResponseRecorder
	headers int
}

func (w *brokenBodyWriter) WriteHeader(status int) {
	w.headers++
	w.ResponseRecorder.WriteHeader(status)
}

func (w *brokenBodyWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestHandle_ErrorAfterCommitWritesNothingMore(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	committed := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusCreated)
		return err
	})

	w := &brokenBodyWriter{ResponseRecorder: httptest.NewRecorder()}
	committed(w, injectNopLogger(httptest.NewRequest(http.MethodPost, "/", nil)))

	assert.Equal(t, 1, w.headers)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandle_ErrorAfterPartialBodyIsNotAppended(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	partial := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, _ = w.Write([]byte(`[`))
		return store.ErrContactNotFound
	})

	rr := httptest.NewRecorder()
	partial(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `[`, rr.Body.String())
}
