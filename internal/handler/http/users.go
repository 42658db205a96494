// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

// errNoPrincipal means a protected handler was mounted without the auth
// middleware. It is a wiring bug and surfaces as a 500.
var errNoPrincipal = errors.New("no authenticated user in request context")

func principal(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, errNoPrincipal
	}
	return user, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request models.UserRequest
	if err := validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user registered")

	_, err = utils.WriteJSON(w, models.RegisterResponse{User: user.Public()}, http.StatusCreated)
	return err
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) error {
	token := chi.URLParam(r, "verificationToken")

	if err := h.services.AuthService.Verify(r.Context(), token); err != nil {
		return err
	}

	_, err := utils.WriteMessage(w, "Verification successful", http.StatusOK)
	return err
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request models.VerifyEmailRequest
	if err := validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	if err := h.services.AuthService.ResendVerification(ctx, request.Email); err != nil {
		return err
	}

	_, err := utils.WriteMessage(w, "Verification email sent", http.StatusOK)
	return err
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request models.UserRequest
	if err := validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	token, user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.LoginResponse{Token: token, User: user.Public()}, http.StatusOK)
	return err
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) error {
	user, err := principal(r)
	if err != nil {
		return err
	}

	if err = h.services.AuthService.Logout(r.Context(), user.UserID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) error {
	user, err := principal(r)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user.Public(), http.StatusOK)
	return err
}

func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, err := principal(r)
	if err != nil {
		return err
	}

	var request models.SubscriptionRequest
	if err = validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	updated, err := h.services.UserService.UpdateSubscription(ctx, user.UserID, request.Subscription)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, updated.Profile(), http.StatusOK)
	return err
}

// updateAvatar runs behind auth and upload("avatar"); the upload middleware
// removes the temp file after this returns.
func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, err := principal(r)
	if err != nil {
		return err
	}

	file, ok := utils.GetUploadedFileFromContext(ctx)
	if !ok {
		return ErrMissingFile
	}

	avatarURL, err := h.services.UserService.UpdateAvatar(ctx, user.UserID, file)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.AvatarResponse{AvatarURL: avatarURL}, http.StatusOK)
	return err
}
