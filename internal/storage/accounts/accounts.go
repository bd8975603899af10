// Package accounts реализует хранилище учётных записей поверх key-value стора.
//
// Вся коллекция пользователей живёт под одним ключом и после каждой мутации
// переписывается целиком одним вызовом Set. Атомарность записи с точки зрения
// вызывающего кода обеспечивается мьютексом вокруг цикла
// «прочитать-изменить-переписать».
package accounts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// UsersKey — ключ, под которым хранится коллекция пользователей.
const UsersKey = "abandonment-garden-users"

// ErrUserNotFound возвращается при обновлении несуществующей записи.
var ErrUserNotFound = errors.New("user not found")

// KV описывает контракт key-value хранилища, используемого коллекцией.
type KV interface {
	Set(key string, value any) error
	Get(key string, result any) (bool, error)
}

// Store — хранилище учётных записей.
type Store struct {
	kv KV
	mu sync.Mutex
}

// New создает новое хранилище учётных записей поверх переданного key-value стора.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// FindByEmail возвращает пользователя по почте. Линейный поиск,
// точное сравнение с учётом регистра; nil, если запись не найдена.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "accounts.FindByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	users, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByID возвращает пользователя по идентификатору или nil, если запись не найдена.
func (s *Store) FindByID(ctx context.Context, id string) (*models.User, error) {
	const op = "accounts.FindByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	users, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Insert добавляет пользователя в коллекцию. Уникальность почты хранилище
// не проверяет, это обязанность вызывающего кода.
func (s *Store) Insert(ctx context.Context, user models.User) error {
	const op = "accounts.Insert"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	users = append(users, user)
	if err := s.kv.Set(UsersKey, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update поверхностно сливает ненулевые поля в запись с указанным id
// и переписывает коллекцию. Возвращает обновлённую запись либо
// ErrUserNotFound, если id отсутствует.
func (s *Store) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	const op = "accounts.Update"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	u := &users[idx]
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.SavedJobIDs != nil {
		u.SavedJobIDs = *upd.SavedJobIDs
	}
	if upd.Applications != nil {
		u.Applications = *upd.Applications
	}
	if upd.Achievements != nil {
		u.Achievements = *upd.Achievements
	}

	if err := s.kv.Set(UsersKey, users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	updated := users[idx]
	return &updated, nil
}

// UpdateWith атомарно применяет fn к записи с указанным id: чтение коллекции,
// проверка внутри fn и перезапись происходят под одним мьютексом, так что
// цикл «проверить-изменить» неделим для конкурентных вызовов. Ошибка fn
// отменяет перезапись и возвращается вызывающему без обёртки, чтобы работали
// сентинельные ошибки бизнес-уровня.
func (s *Store) UpdateWith(ctx context.Context, id string, fn func(u *models.User) error) (*models.User, error) {
	const op = "accounts.UpdateWith"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	if err := fn(&users[idx]); err != nil {
		return nil, err
	}

	if err := s.kv.Set(UsersKey, users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	updated := users[idx]
	return &updated, nil
}

// load читает коллекцию из хранилища. Отсутствующий ключ — пустая коллекция.
func (s *Store) load() ([]models.User, error) {
	var users []models.User
	if _, err := s.kv.Get(UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}
