// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/mock"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testOwner     = "0190a1b2-0000-7000-8000-0000000000aa"
	testContactID = "0190a1b2-0000-7000-8000-0000000000cc"
)

func newTestContactSvc(t *testing.T) (ContactService, *mock.MockContactRepository) {
	t.Helper()
	contacts := mock.NewMockContactRepository(gomock.NewController(t))
	return NewContactService(contacts, fixedIDs(testContactID), logger.Nop()), contacts
}

func TestContactService_List(t *testing.T) {
	svc, contacts := newTestContactSvc(t)
	ctx := context.Background()
	filter := models.ContactFilter{Owner: testOwner, Page: 2, Limit: 5}

	contacts.EXPECT().ListContacts(ctx, filter).Return([]models.Contact{{ContactID: testContactID}}, nil)

	got, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, uint64(5), filter.Offset())
}

func TestContactService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found twice", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t)
		contact := models.Contact{ContactID: testContactID, Owner: testOwner, Name: "ann"}
		contacts.EXPECT().GetContact(ctx, testOwner, testContactID).Return(contact, nil).Times(2)

		first, err := svc.Get(ctx, testOwner, testContactID)
		require.NoError(t, err)
		second, err := svc.Get(ctx, testOwner, testContactID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("malformed id never reaches storage", func(t *testing.T) {
		svc, _ := newTestContactSvc(t)

		_, err := svc.Get(ctx, testOwner, "42")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("other owner", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t)
		contacts.EXPECT().GetContact(ctx, "someone-else", testContactID).Return(models.Contact{}, store.ErrContactNotFound)

		_, err := svc.Get(ctx, "someone-else", testContactID)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}

func TestContactService_Create(t *testing.T) {
	svc, contacts := newTestContactSvc(t)
	ctx := context.Background()
	favorite := true

	contacts.EXPECT().CreateContact(ctx, models.Contact{
		ContactID: testContactID,
		Owner:     testOwner,
		Name:      "ann",
		Email:     "ann@mail.com",
		Phone:     "555",
		Favorite:  true,
	}).Return(models.Contact{ContactID: testContactID, Owner: testOwner}, nil)

	created, err := svc.Create(ctx, testOwner, models.ContactRequest{Name: "ann", Email: "ann@mail.com", Phone: "555", Favorite: &favorite})
	require.NoError(t, err)
	assert.Equal(t, testOwner, created.Owner)
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()
	request := models.ContactRequest{Name: "bob", Email: "bob@mail.com"}

	t.Run("updated", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t)
		contacts.EXPECT().UpdateContact(ctx, testOwner, testContactID, request).Return(models.Contact{Name: "bob"}, nil)

		updated, err := svc.Update(ctx, testOwner, testContactID, request)
		require.NoError(t, err)
		assert.Equal(t, "bob", updated.Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newTestContactSvc(t)

		_, err := svc.Update(ctx, testOwner, "abc", request)
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestContactService_UpdateFavorite(t *testing.T) {
	svc, contacts := newTestContactSvc(t)
	ctx := context.Background()

	contacts.EXPECT().UpdateFavorite(ctx, testOwner, testContactID, true).Return(models.Contact{}, store.ErrContactNotFound)

	_, err := svc.UpdateFavorite(ctx, testOwner, testContactID, true)
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t)
		contacts.EXPECT().DeleteContact(ctx, testOwner, testContactID).Return(nil)

		require.NoError(t, svc.Delete(ctx, testOwner, testContactID))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newTestContactSvc(t)

		assert.ErrorIs(t, svc.Delete(ctx, testOwner, "x"), store.ErrInvalidID)
	})
}
