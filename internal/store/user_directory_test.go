package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func newUser(name, email string, role domain.Role) *domain.User {
	return &domain.User{
		Name:       name,
		Email:      email,
		Role:       role,
		Department: domain.DepartmentIT,
	}
}

func TestUserDirectoryCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(false)

	first := newUser("Ana", "ana@corp.test", domain.RoleRequester)
	second := newUser("Bruno", "bruno@corp.test", domain.RoleTechnician)
	require.NoError(t, dir.Create(ctx, first))
	require.NoError(t, dir.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestUserDirectoryIDsNotReusedAfterFailedCreate(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(true)

	require.NoError(t, dir.Create(ctx, newUser("Ana", "ana@corp.test", domain.RoleRequester)))

	dup := newUser("Impostor", "ANA@CORP.TEST", domain.RoleRequester)
	err := dir.Create(ctx, dup)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	next := newUser("Bruno", "bruno@corp.test", domain.RoleRequester)
	require.NoError(t, dir.Create(ctx, next))
	assert.Equal(t, int64(3), next.ID, "id consumed by the failed attempt must not be reused")
}

func TestUserDirectoryAllowsDuplicateEmailsByDefault(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(false)

	require.NoError(t, dir.Create(ctx, newUser("Ana", "shared@corp.test", domain.RoleRequester)))
	require.NoError(t, dir.Create(ctx, newUser("Bruno", "shared@corp.test", domain.RoleRequester)))

	users, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserDirectoryGetByEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(false)

	created := newUser("Ana", "a@b.com", domain.RoleRequester)
	require.NoError(t, dir.Create(ctx, created))

	found, err := dir.GetByEmail(ctx, "A@B.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = dir.GetByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDirectoryGetByID(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(false)

	created := newUser("Ana", "ana@corp.test", domain.RoleRequester)
	require.NoError(t, dir.Create(ctx, created))

	found, err := dir.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	_, err = dir.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDirectoryListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory(false)

	names := []string{"Ana", "Bruno", "Carla"}
	for _, name := range names {
		require.NoError(t, dir.Create(ctx, newUser(name, name+"@corp.test", domain.RoleRequester)))
	}

	users, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, name := range names {
		assert.Equal(t, name, users[i].Name)
	}
}
