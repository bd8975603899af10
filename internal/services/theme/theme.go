// Package theme хранит пользовательскую настройку темы оформления.
package theme

import (
	"errors"
	"fmt"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Key — ключ, под которым хранится настройка темы.
const Key = "abandonment-garden-theme"

// ErrInvalidTheme возвращается для значения, отличного от dark/light.
var ErrInvalidTheme = errors.New("invalid theme")

// KV описывает нужную часть key-value хранилища.
type KV interface {
	Set(key string, value any) error
	Get(key string, result any) (bool, error)
}

// Service — чтение и запись темы оформления.
type Service struct {
	kv KV
}

// New создает новый экземпляр Service.
func New(kv KV) *Service {
	return &Service{kv: kv}
}

// Get возвращает сохранённую тему; по умолчанию — тёмная.
func (s *Service) Get() (string, error) {
	const op = "theme.Get"
	var theme string
	found, err := s.kv.Get(Key, &theme)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !found || (theme != models.ThemeDark && theme != models.ThemeLight) {
		return models.ThemeDark, nil
	}
	return theme, nil
}

// Set сохраняет тему. Допустимы только dark и light.
func (s *Service) Set(theme string) error {
	const op = "theme.Set"
	if theme != models.ThemeDark && theme != models.ThemeLight {
		return ErrInvalidTheme
	}
	if err := s.kv.Set(Key, theme); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
