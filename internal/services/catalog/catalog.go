// Package catalog реализует каталог вакансий: однократную загрузку из внешнего
// JSON-ресурса, поиск, фильтрацию по категории и сортировку рабочего среза.
//
// Пустой каталог неоднозначен: это может быть «ещё не загрузился» или
// «вакансий действительно нет». Поэтому каталог держит явное состояние
// загрузки, и вызывающий код обязан смотреть на него, а не на длину списка.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// State — состояние загрузки каталога.
type State int

const (
	// StateLoading — загрузка ещё не выполнялась или идёт.
	StateLoading State = iota
	// StateReady — каталог загружен, пустой список означает «вакансий нет».
	StateReady
	// StateFailed — загрузка не удалась, каталог пуст.
	StateFailed
)

const cacheKey = "catalog:jobs"

// Cache описывает методы для кэширования каталога.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// Service — каталог вакансий с рабочим срезом для поиска и сортировки.
//
// Поиск и фильтр не композируются: каждый вызов пересчитывает срез от полного
// списка, побеждает последний предикат. Сортировка, напротив, переставляет
// текущий срез на месте.
type Service struct {
	source string
	client *http.Client
	cache  Cache
	log    *slog.Logger

	mu       sync.RWMutex
	state    State
	jobs     []models.Job
	filtered []models.Job
}

// New создает каталог для указанного источника: http(s) URL либо путь к файлу.
func New(source string, client *http.Client, cache Cache, log *slog.Logger) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		source: source,
		client: client,
		cache:  cache,
		log:    log,
		state:  StateLoading,
	}
}

// Load загружает каталог один раз при старте. Сначала пробует кеш,
// затем внешний ресурс. При любой ошибке каталог остаётся пустым,
// состояние становится StateFailed, ошибка логируется и возвращается.
func (s *Service) Load(ctx context.Context) error {
	const op = "catalog.Load"

	var jobs []models.Job
	found, err := s.cache.Get(cacheKey, &jobs)
	if err != nil {
		s.log.Warn("failed to read catalog cache", sl.Err(err))
	}
	if !found {
		jobs, err = s.fetch(ctx)
		if err != nil {
			s.mu.Lock()
			s.state = StateFailed
			s.mu.Unlock()
			s.log.Error("failed to load job catalog", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := s.cache.Set(cacheKey, jobs, 24*time.Hour); err != nil {
			s.log.Warn("failed to cache catalog", slog.String("key", cacheKey), sl.Err(err))
		}
	}

	s.mu.Lock()
	s.jobs = jobs
	s.filtered = append([]models.Job(nil), jobs...)
	s.state = StateReady
	s.mu.Unlock()

	s.log.Info("job catalog loaded", slog.Int("jobs", len(jobs)))
	return nil
}

// fetch читает JSON-массив вакансий из http(s) URL либо из локального файла.
func (s *Service) fetch(ctx context.Context) ([]models.Job, error) {
	var raw []byte
	if strings.HasPrefix(s.source, "http://") || strings.HasPrefix(s.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.source)
		}
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		raw, err = os.ReadFile(s.source)
		if err != nil {
			return nil, err
		}
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// State возвращает состояние загрузки каталога.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready сообщает, что каталог успешно загружен.
func (s *Service) Ready() bool {
	return s.State() == StateReady
}

// Jobs возвращает копию полного списка вакансий.
func (s *Service) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.jobs...)
}

// Filtered возвращает копию текущего рабочего среза.
func (s *Service) Filtered() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.filtered...)
}

// Search пересчитывает рабочий срез: подстрочный поиск без учёта регистра
// по названию, компании, локации и категории. Пустой или пробельный запрос
// возвращает срез к полному списку.
func (s *Service) Search(query string) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		s.filtered = append([]models.Job(nil), s.jobs...)
		return append([]models.Job(nil), s.filtered...)
	}

	var matched []models.Job
	for _, job := range s.jobs {
		if strings.Contains(strings.ToLower(job.Title), query) ||
			strings.Contains(strings.ToLower(job.Company), query) ||
			strings.Contains(strings.ToLower(job.Location), query) ||
			strings.Contains(strings.ToLower(job.Category), query) {
			matched = append(matched, job)
		}
	}
	s.filtered = matched
	return append([]models.Job(nil), matched...)
}

// FilterByCategory пересчитывает рабочий срез по точному совпадению категории.
// Сентинел models.CategoryAll возвращает полный список.
func (s *Service) FilterByCategory(category string) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == models.CategoryAll {
		s.filtered = append([]models.Job(nil), s.jobs...)
		return append([]models.Job(nil), s.filtered...)
	}

	var matched []models.Job
	for _, job := range s.jobs {
		if job.Category == category {
			matched = append(matched, job)
		}
	}
	s.filtered = matched
	return append([]models.Job(nil), matched...)
}

// Sort устойчиво сортирует текущий рабочий срез на месте.
// Неизвестный ключ сортировки — no-op.
func (s *Service) Sort(key string) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case models.SortNewest:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return parseDate(s.filtered[i].PostedDate).After(parseDate(s.filtered[j].PostedDate))
		})
	case models.SortSalaryHigh:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[i].SalaryMax > s.filtered[j].SalaryMax
		})
	case models.SortSalaryLow:
		sort.SliceStable(s.filtered, func(i, j int) bool {
			return s.filtered[i].SalaryMin < s.filtered[j].SalaryMin
		})
	}
	return append([]models.Job(nil), s.filtered...)
}

// GetByID возвращает вакансию по идентификатору или nil, если её нет.
func (s *Service) GetByID(id string) *models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job
		}
	}
	return nil
}

// parseDate разбирает дату публикации. Непригодная дата считается нулевой
// и уходит в конец списка при сортировке по свежести.
func parseDate(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}
	}
	return t
}
