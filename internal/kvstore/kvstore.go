// Package kvstore реализует файловое key-value хранилище документов в формате JSON.
//
// Всё пространство имён живёт в одном файле: каждая запись Set сериализует значение
// и перезаписывает файл целиком. Повреждённые данные не поднимаются наружу —
// при чтении они считаются отсутствующими и лишь попадают в лог.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
)

// Store — файловое key-value хранилище JSON-документов.
//
// Мьютекс охраняет цикл «прочитать-изменить-переписать», чтобы свойство
// «каждая запись атомарно переписывает всё пространство имён» сохранялось
// и при конкурентных запросах.
type Store struct {
	path string
	log  *slog.Logger

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open открывает хранилище по указанному пути. Отсутствующий файл означает
// пустое хранилище; повреждённый файл также считается пустым и логируется.
func Open(path string, log *slog.Logger) (*Store, error) {
	const op = "kvstore.Open"

	s := &Store{
		path: path,
		log:  log,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn("storage file is corrupt, starting empty", sl.Err(err), slog.String("path", path))
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Set сериализует значение и сохраняет его под ключом, переписывая файл целиком.
// Ошибка возможна только при сериализации либо записи на диск.
func (s *Store) Set(key string, value any) error {
	const op = "kvstore.Set"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	if err := s.flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get десериализует значение ключа в result. Возвращает false, если ключ
// отсутствует либо значение повреждено: повреждённые данные логируются
// и наружу не отдаются.
func (s *Store) Get(key string, result any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		s.log.Warn("corrupt value in storage", sl.Err(err), slog.String("key", key))
		return false, nil
	}
	return true, nil
}

// Remove безусловно удаляет ключ.
func (s *Store) Remove(key string) error {
	const op = "kvstore.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	if err := s.flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear безусловно очищает всё пространство имён.
func (s *Store) Clear() error {
	const op = "kvstore.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	if err := s.flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// flush переписывает файл хранилища целиком. Вызывается под мьютексом.
func (s *Store) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
