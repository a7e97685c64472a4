package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		FirstName:    "Alice",
		LastName:     "Smith",
		Username:     "asmith",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.Equal(t, user.FirstName, retrieved.FirstName)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.True(t, retrieved.IsActive)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := &models.User{
		ID:           uuid.New().String(),
		Email:        "duplicate@example.com",
		PasswordHash: "hash1",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user1)
	require.NoError(t, err)

	user2 := &models.User{
		ID:           uuid.New().String(),
		Email:        "duplicate@example.com", // Same email
		PasswordHash: "hash2",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err = s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        "findme@example.com",
		PasswordHash: "hash123",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		name      string
		email     string
	}{
		{
			name:      "get existing user",
			email:     "findme@example.com",
			wantError: nil,
		},
		{
			name:      "get non-existent user",
			email:     "notfound@example.com",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetUserByEmail(ctx, tt.email)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, retrieved.ID)
			}
		})
	}
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Email:        "update@example.com",
		PasswordHash: "hash1",
		FirstName:    "Old",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		updates   *models.User
		name      string
	}{
		{
			name: "update profile fields",
			updates: &models.User{
				ID:           userID,
				FirstName:    "New",
				LastName:     "Name",
				Username:     "newname",
				PasswordHash: "newhash",
				IsActive:     true,
				UpdatedAt:    time.Now(),
			},
			wantError: nil,
		},
		{
			name: "update non-existent user",
			updates: &models.User{
				ID:           "nonexistent",
				FirstName:    "foo",
				PasswordHash: "bar",
			},
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateUser(ctx, tt.updates)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				retrieved, err := s.GetUserByID(ctx, tt.updates.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.updates.FirstName, retrieved.FirstName)
				assert.Equal(t, tt.updates.Username, retrieved.Username)
				assert.Equal(t, tt.updates.PasswordHash, retrieved.PasswordHash)
				// Email не изменяется через UpdateUser
				assert.Equal(t, "update@example.com", retrieved.Email)
			}
		})
	}
}

// Helper functions

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createStorageUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Email:        userID[:8] + "@example.com",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return userID
}
