// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Queries are composed with squirrel.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ContactID,
		&contact.Owner,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Favorite,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	return contact, err
}

// scanContactListItem reads the list projection, which carries no timestamps.
func scanContactListItem(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ContactID,
		&contact.Owner,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Favorite,
	)
	return contact, err
}

// ListContacts returns one page of the owner's contacts. A page past the end
// is an empty, non-nil slice.
func (c *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx).With().Str("func", "*contactRepository.ListContacts").Logger()

	if filter.PastEnd() {
		return []models.Contact{}, nil
	}

	query, args, err := buildListContactsQuery(filter)
	if err != nil {
		log.Err(err).Msg("error building query")
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = translateError(err, ErrContactNotFound)
		log.Err(err).Msg("error listing contacts")
		return nil, err
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, min(filter.Limit, models.MaxContactsLimit))
	for rows.Next() {
		contact, err := scanContactListItem(rows)
		if err != nil {
			log.Err(err).Msg("error scanning contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Msg("error iterating contacts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (c *contactRepository) GetContact(ctx context.Context, owner, contactID string) (models.Contact, error) {
	query, args, err := buildGetContactQuery(owner, contactID)
	if err != nil {
		return models.Contact{}, err
	}

	return c.queryOne(ctx, "*contactRepository.GetContact", query, args)
}

func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query, args, err := buildCreateContactQuery(contact)
	if err != nil {
		return models.Contact{}, err
	}

	return c.queryOne(ctx, "*contactRepository.CreateContact", query, args)
}

func (c *contactRepository) UpdateContact(ctx context.Context, owner, contactID string, update models.ContactRequest) (models.Contact, error) {
	query, args, err := buildUpdateContactQuery(owner, contactID, update)
	if err != nil {
		return models.Contact{}, err
	}

	return c.queryOne(ctx, "*contactRepository.UpdateContact", query, args)
}

func (c *contactRepository) UpdateFavorite(ctx context.Context, owner, contactID string, favorite bool) (models.Contact, error) {
	query, args, err := buildUpdateFavoriteQuery(owner, contactID, favorite)
	if err != nil {
		return models.Contact{}, err
	}

	return c.queryOne(ctx, "*contactRepository.UpdateFavorite", query, args)
}

// DeleteContact removes the contact; zero affected rows is
// [ErrContactNotFound].
func (c *contactRepository) DeleteContact(ctx context.Context, owner, contactID string) error {
	log := logger.FromContext(ctx).With().Str("func", "*contactRepository.DeleteContact").Logger()

	query, args, err := buildDeleteContactQuery(owner, contactID)
	if err != nil {
		log.Err(err).Msg("error building query")
		return err
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = translateError(err, ErrContactNotFound)
		log.Err(err).Msg("error deleting contact")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// queryOne runs a statement returning one contact row.
func (c *contactRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(c.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = translateError(err, ErrContactNotFound)
		log.Err(err).Str("func", funcName).Msg("contact query failed")
		return models.Contact{}, err
	}

	return contact, nil
}
