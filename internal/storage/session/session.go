// Package session реализует хранение текущей сессии — «очищенной» проекции
// пользователя без хэша пароля. Сессия одна на всё хранилище: копия записи
// из коллекции учётных записей, которая может отставать от неё до следующего
// явного обновления.
package session

import (
	"fmt"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Key — ключ, под которым хранится текущая сессия.
const Key = "abandonment-garden-session"

// KV описывает контракт key-value хранилища, используемого сессией.
type KV interface {
	Set(key string, value any) error
	Get(key string, result any) (bool, error)
	Remove(key string) error
}

// Store — хранилище текущей сессии.
type Store struct {
	kv KV
}

// New создает хранилище сессии поверх переданного key-value стора.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Get возвращает текущую сессию либо nil, если пользователь не аутентифицирован.
func (s *Store) Get() (*models.SessionUser, error) {
	const op = "session.Get"
	var u models.SessionUser
	found, err := s.kv.Get(Key, &u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

// Set сохраняет сессию.
func (s *Store) Set(u *models.SessionUser) error {
	const op = "session.Set"
	if err := s.kv.Set(Key, u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear безусловно удаляет сессию. Ошибки нет даже при отсутствии сессии.
func (s *Store) Clear() error {
	const op = "session.Clear"
	if err := s.kv.Remove(Key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
