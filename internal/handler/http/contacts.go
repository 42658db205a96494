// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage  uint64 = 1
	defaultLimit uint64 = 20
)

// contactFilterFromQuery reads page, limit and favorite from the query string.
func contactFilterFromQuery(owner string, query url.Values) (models.ContactFilter, error) {
	filter := models.ContactFilter{Owner: owner, Page: defaultPage, Limit: defaultLimit}

	var err error
	if filter.Page, err = positiveParam(query, "page", defaultPage); err != nil {
		return filter, err
	}
	if filter.Limit, err = positiveParam(query, "limit", defaultLimit); err != nil {
		return filter, err
	}
	filter.Limit = min(filter.Limit, models.MaxContactsLimit)

	if raw := query.Get("favorite"); raw != "" {
		favorite, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, ErrInvalidFavorite
		}
		filter.Favorite = &favorite
	}

	return filter, nil
}

func positiveParam(query url.Values, key string, fallback uint64) (uint64, error) {
	if !query.Has(key) {
		return fallback, nil
	}

	value, err := strconv.ParseUint(query.Get(key), 10, 64)
	if err != nil || value == 0 {
		return 0, ErrInvalidPagination
	}
	return value, nil
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) error {
	user, err := principal(r)
	if err != nil {
		return err
	}

	filter, err := contactFilterFromQuery(user.UserID, r.URL.Query())
	if err != nil {
		return err
	}

	contacts, err := h.services.ContactService.List(r.Context(), filter)
	if err != nil {
		return err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	_, err = utils.WriteJSON(w, contacts, http.StatusOK)
	return err
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) error {
	user, err := principal(r)
	if err != nil {
		return err
	}

	contact, err := h.services.ContactService.Get(r.Context(), user.UserID, chi.URLParam(r, "contactID"))
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, contact, http.StatusOK)
	return err
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, err := principal(r)
	if err != nil {
		return err
	}

	var request models.ContactRequest
	if err = validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	contact, err := h.services.ContactService.Create(ctx, user.UserID, request)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, contact, http.StatusCreated)
	return err
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, err := principal(r)
	if err != nil {
		return err
	}

	var request models.ContactRequest
	if err = validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	contact, err := h.services.ContactService.Update(ctx, user.UserID, chi.URLParam(r, "contactID"), request)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, contact, http.StatusOK)
	return err
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) error {
	user, err := principal(r)
	if err != nil {
		return err
	}

	if err = h.services.ContactService.Delete(r.Context(), user.UserID, chi.URLParam(r, "contactID")); err != nil {
		return err
	}

	_, err = utils.WriteMessage(w, "contact deleted", http.StatusOK)
	return err
}

func (h *Handler) updateFavorite(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, err := principal(r)
	if err != nil {
		return err
	}

	var request models.FavoriteRequest
	if err = validators.DecodeAndValidate(ctx, h.validator, r.Body, &request); err != nil {
		return err
	}

	contact, err := h.services.ContactService.UpdateFavorite(ctx, user.UserID, chi.URLParam(r, "contactID"), *request.Favorite)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, contact, http.StatusOK)
	return err
}
