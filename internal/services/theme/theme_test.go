package theme

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/abandonment-garden/internal/kvstore"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "storage.json"), log)
	require.NoError(t, err)
	return New(kv)
}

func TestService_DefaultIsDark(t *testing.T) {
	s := newTestService(t)

	theme, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)
}

func TestService_SetGet(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Set(models.ThemeLight))
	theme, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestService_SetInvalid(t *testing.T) {
	s := newTestService(t)

	assert.ErrorIs(t, s.Set("sepia"), ErrInvalidTheme)
	assert.ErrorIs(t, s.Set(""), ErrInvalidTheme)
}
