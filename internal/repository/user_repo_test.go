package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axishotel/internal/domain"
)

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := &domain.User{
		Email:        "guest@example.com",
		PasswordHash: "hash",
		Name:         "Guest",
		Role:         domain.RoleGuest,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := repo.GetByEmail(ctx, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, domain.RoleGuest, got.Role)
}

func TestUserRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		Email:        "guest@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleGuest,
	}))

	got, err := repo.GetByEmail(ctx, "Guest@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", got.Email)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &domain.User{
		Email:        "guest@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleGuest,
	}))

	exists, err = repo.ExistsByEmail(ctx, "GUEST@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
