// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// contactService scopes every operation by owner: another owner's contact
// id behaves exactly like a missing one.
type contactService struct {
	contactRepository store.ContactRepository
	ids               utils.IDGenerator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, ids utils.IDGenerator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		ids:               ids,
		logger:            logger,
	}
}

func (c *contactService) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	contacts, err := c.contactRepository.ListContacts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.List").Str("owner", filter.Owner).Msg("listing contacts failed")
		return nil, fmt.Errorf("listing contacts failed: %w", err)
	}

	return contacts, nil
}

func (c *contactService) Get(ctx context.Context, owner, contactID string) (models.Contact, error) {
	if !utils.IsUUID(contactID) {
		return models.Contact{}, store.ErrInvalidID
	}

	contact, err := c.contactRepository.GetContact(ctx, owner, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("getting contact failed: %w", err)
	}

	return contact, nil
}

func (c *contactService) Create(ctx context.Context, owner string, request models.ContactRequest) (models.Contact, error) {
	contact := models.Contact{
		ContactID: c.ids.Generate(),
		Owner:     owner,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	if request.Favorite != nil {
		contact.Favorite = *request.Favorite
	}

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.Create").Str("owner", owner).Msg("contact creation failed")
		return models.Contact{}, fmt.Errorf("contact creation failed: %w", err)
	}

	return created, nil
}

func (c *contactService) Update(ctx context.Context, owner, contactID string, request models.ContactRequest) (models.Contact, error) {
	if !utils.IsUUID(contactID) {
		return models.Contact{}, store.ErrInvalidID
	}

	updated, err := c.contactRepository.UpdateContact(ctx, owner, contactID, request)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact update failed: %w", err)
	}

	return updated, nil
}

func (c *contactService) UpdateFavorite(ctx context.Context, owner, contactID string, favorite bool) (models.Contact, error) {
	if !utils.IsUUID(contactID) {
		return models.Contact{}, store.ErrInvalidID
	}

	updated, err := c.contactRepository.UpdateFavorite(ctx, owner, contactID, favorite)
	if err != nil {
		return models.Contact{}, fmt.Errorf("favorite update failed: %w", err)
	}

	return updated, nil
}

func (c *contactService) Delete(ctx context.Context, owner, contactID string) error {
	if !utils.IsUUID(contactID) {
		return store.ErrInvalidID
	}

	if err := c.contactRepository.DeleteContact(ctx, owner, contactID); err != nil {
		return fmt.Errorf("contact deletion failed: %w", err)
	}

	return nil
}
