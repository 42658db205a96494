// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the migrations and
// returns the connected pool. Tests are skipped when no container runtime
// is available.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	if os.Getenv("SKIP_INTEGRATION") == "true" {
		t.Skip("SKIP_INTEGRATION=true, skipping PostgreSQL integration tests")
	}

	ctx := context.Background()

	container, err := pgmodule.Run(ctx,
		"postgres:16-alpine",
		pgmodule.WithDatabase("contacts_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("skipping: could not start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestIntegration_UsersAndContacts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ids := utils.NewUUIDGenerator()

	users := NewUserRepository(db, logger.Nop())
	contacts := NewContactRepository(db, logger.Nop())

	verification := "verification-token"
	user, err := users.CreateUser(ctx, models.User{
		UserID:            ids.Generate(),
		Email:             "owner@mail.com",
		Password:          "hash",
		Subscription:      models.SubscriptionStarter,
		VerificationToken: &verification,
	})
	require.NoError(t, err)
	assert.False(t, user.Verify)

	_, err = users.CreateUser(ctx, models.User{UserID: ids.Generate(), Email: "owner@mail.com", Password: "hash", Subscription: models.SubscriptionStarter})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := users.FindUserByVerificationToken(ctx, verification)
	require.NoError(t, err)
	require.NoError(t, users.MarkUserVerified(ctx, found.UserID))

	_, err = users.FindUserByVerificationToken(ctx, verification)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.FindUserByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	token := "session"
	require.NoError(t, users.UpdateToken(ctx, user.UserID, &token))
	reloaded, err := users.FindUserByEmail(ctx, "owner@mail.com")
	require.NoError(t, err)
	assert.True(t, reloaded.Verify)
	require.NotNil(t, reloaded.Token)
	assert.Equal(t, token, *reloaded.Token)

	require.NoError(t, users.UpdateToken(ctx, user.UserID, nil))

	updated, err := users.UpdateSubscription(ctx, user.UserID, models.SubscriptionBusiness)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionBusiness, updated.Subscription)

	_, err = users.UpdateSubscription(ctx, user.UserID, "gold")
	assert.ErrorIs(t, err, ErrStorageValidation)

	for _, name := range []string{"ann", "bob", "cid"} {
		_, err := contacts.CreateContact(ctx, models.Contact{
			ContactID: ids.Generate(),
			Owner:     user.UserID,
			Name:      name,
			Email:     name + "@mail.com",
			Favorite:  name == "bob",
		})
		require.NoError(t, err)
	}

	page, err := contacts.ListContacts(ctx, models.ContactFilter{Owner: user.UserID, Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "ann", page[0].Name)

	favorite := true
	favorites, err := contacts.ListContacts(ctx, models.ContactFilter{Owner: user.UserID, Page: 1, Limit: 20, Favorite: &favorite})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "bob", favorites[0].Name)

	_, err = contacts.GetContact(ctx, ids.Generate(), page[0].ContactID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	require.NoError(t, contacts.DeleteContact(ctx, user.UserID, page[0].ContactID))
	assert.ErrorIs(t, contacts.DeleteContact(ctx, user.UserID, page[0].ContactID), ErrContactNotFound)
}
