package repository_test

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/repository"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	db := getTestDB(t)
	events := repository.NewEventRepository(db)
	repo := repository.NewRegistrationRepository(db)
	ctx := context.Background()

	event, err := events.Create(ctx, newTestEvent("Workshop", model.EventStatusApproved, time.Now().UTC()))
	require.NoError(t, err)
	userID := createTestUser(t, "grace@campus.edu")

	t.Run("Success", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Registration{ID: uuid.New(), EventID: event.ID, UserID: userID})

		require.NoError(t, err)
		assert.Equal(t, event.ID, created.EventID)
		assert.Equal(t, userID, created.UserID)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Failed - AlreadyRegistered", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Registration{ID: uuid.New(), EventID: event.ID, UserID: userID})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Registration{ID: uuid.New(), EventID: uuid.New(), UserID: userID})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - UserNotFound", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Registration{ID: uuid.New(), EventID: event.ID, UserID: uuid.New()})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestRegistrationRepository_ListByUserID(t *testing.T) {
	db := getTestDB(t)
	events := repository.NewEventRepository(db)
	repo := repository.NewRegistrationRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, "linus@campus.edu")
	other := createTestUser(t, "ken@campus.edu")
	for i := 0; i < 2; i++ {
		event, err := events.Create(ctx, newTestEvent("Event", model.EventStatusApproved, time.Now().UTC()))
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Registration{ID: uuid.New(), EventID: event.ID, UserID: userID})
		require.NoError(t, err)
	}

	registrations, err := repo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, registrations, 2)

	empty, err := repo.ListByUserID(ctx, other)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
