package accounts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/abandonment-garden/internal/kvstore"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "storage.json"), log)
	require.NoError(t, err)
	return New(kv)
}

func testUser(id, email string) models.User {
	return models.User{
		ID:    id,
		Name:  "Test User",
		Email: email,
	}
}

func TestStore_InsertAndFind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "one@example.com")))
	require.NoError(t, s.Insert(ctx, testUser("u2", "two@example.com")))

	byEmail, err := s.FindByEmail(ctx, "two@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u2", byEmail.ID)

	byID, err := s.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "one@example.com", byID.Email)
}

func TestStore_FindIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "Someone@example.com")))

	found, err := s.FindByEmail(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStore_FindMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	byEmail, err := s.FindByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := s.FindByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestStore_UpdateMergesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "one@example.com")))

	newName := "Renamed"
	saved := []string{"job-1", "job-2"}
	updated, err := s.Update(ctx, "u1", models.UserUpdate{
		Name:        &newName,
		SavedJobIDs: &saved,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, []string{"job-1", "job-2"}, updated.SavedJobIDs)
	// не тронутые поля сохраняются
	assert.Equal(t, "one@example.com", updated.Email)

	reread, err := s.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", reread.Name)
}

func TestStore_UpdateMissingUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newName := "Nobody"
	_, err := s.Update(ctx, "ghost", models.UserUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStore_UpdateWithAppliesCallbackAtomically(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "one@example.com")))

	const goroutines = 16

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdateWith(ctx, "u1", func(u *models.User) error {
				u.SavedJobIDs = append(u.SavedJobIDs, "job")
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// цикл «прочитать-изменить-переписать» неделим: ни одно добавление не потеряно
	reread, err := s.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, reread.SavedJobIDs, goroutines)
}

func TestStore_UpdateWithCallbackErrorAbortsWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "one@example.com")))

	errSkip := errors.New("skip")
	_, err := s.UpdateWith(ctx, "u1", func(u *models.User) error {
		u.Name = "Should Not Persist"
		return errSkip
	})
	// ошибка колбэка возвращается без обёртки
	assert.ErrorIs(t, err, errSkip)

	reread, err := s.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Test User", reread.Name)
}

func TestStore_UpdateWithMissingUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateWith(ctx, "ghost", func(_ *models.User) error { return nil })
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStore_InsertDoesNotEnforceUniqueness(t *testing.T) {
	// уникальность почты — обязанность вызывающего кода
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testUser("u1", "dup@example.com")))
	require.NoError(t, s.Insert(ctx, testUser("u2", "dup@example.com")))

	found, err := s.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)
}
