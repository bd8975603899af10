// Package ledger содержит бизнес-логику сохранённых вакансий и откликов:
// пользовательские списки, которые при каждой мутации сливаются обратно
// в учётную запись, плюс выдача достижений после успешного отклика.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
	"github.com/magabrotheeeer/abandonment-garden/internal/services/achievements"
	"github.com/magabrotheeeer/abandonment-garden/internal/storage/accounts"
)

// Ошибки бизнес-уровня откликов.
var (
	// ErrNotAuthenticated — операция требует активной сессии.
	ErrNotAuthenticated = errors.New("authentication required")
	// ErrAlreadyApplied — отклик на эту вакансию уже существует.
	ErrAlreadyApplied = errors.New("you have already applied to this position")
	// ErrJobNotFound — вакансия не найдена в каталоге.
	ErrJobNotFound = errors.New("job not found")
)

// errNoChange — внутренний сигнал колбэка UpdateWith: проверка не прошла,
// перезаписывать коллекцию не нужно, но это и не ошибка.
var errNoChange = errors.New("no change")

// AccountsRepository описывает нужную часть хранилища учётных записей.
// UpdateWith обязан выполнять колбэк и перезапись атомарно относительно
// других мутаций той же коллекции.
type AccountsRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateWith(ctx context.Context, id string, fn func(u *models.User) error) (*models.User, error)
}

// SessionStore описывает контракт хранилища текущей сессии.
type SessionStore interface {
	Get() (*models.SessionUser, error)
	Set(u *models.SessionUser) error
}

// Catalog описывает нужную часть каталога вакансий.
type Catalog interface {
	GetByID(id string) *models.Job
}

// Notifier публикует события о новых достижениях.
type Notifier interface {
	PublishAchievement(event models.AchievementEvent) error
}

// Service реализует бизнес-логику сохранённых вакансий и откликов.
type Service struct {
	accounts AccountsRepository
	session  SessionStore
	catalog  Catalog
	notifier Notifier
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(accounts AccountsRepository, session SessionStore, catalog Catalog, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		session:  session,
		catalog:  catalog,
		notifier: notifier,
		log:      log,
	}
}

// SaveJob добавляет вакансию в сохранённые. Возвращает false без ошибки,
// если пользователь не аутентифицирован либо вакансия уже сохранена.
// Проверка дубликата и запись выполняются одним атомарным циклом.
func (s *Service) SaveJob(ctx context.Context, userID, jobID string) (bool, error) {
	const op = "ledger.SaveJob"

	if userID == "" {
		return false, nil
	}

	updated, err := s.accounts.UpdateWith(ctx, userID, func(u *models.User) error {
		for _, id := range u.SavedJobIDs {
			if id == jobID {
				return errNoChange
			}
		}
		u.SavedJobIDs = append(append([]string(nil), u.SavedJobIDs...), jobID)
		return nil
	})
	if err != nil {
		if errors.Is(err, errNoChange) || errors.Is(err, accounts.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	s.refreshSession(updated)
	return true, nil
}

// UnsaveJob убирает вакансию из сохранённых и сообщает, было ли удаление.
// Для неаутентифицированного пользователя — no-op.
func (s *Service) UnsaveJob(ctx context.Context, userID, jobID string) (bool, error) {
	const op = "ledger.UnsaveJob"

	if userID == "" {
		return false, nil
	}

	updated, err := s.accounts.UpdateWith(ctx, userID, func(u *models.User) error {
		idx := -1
		for i, id := range u.SavedJobIDs {
			if id == jobID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNoChange
		}
		u.SavedJobIDs = append(append([]string(nil), u.SavedJobIDs[:idx]...), u.SavedJobIDs[idx+1:]...)
		return nil
	})
	if err != nil {
		if errors.Is(err, errNoChange) || errors.Is(err, accounts.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	s.refreshSession(updated)
	return true, nil
}

// IsSaved сообщает, сохранена ли вакансия у пользователя.
func (s *Service) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	const op = "ledger.IsSaved"

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return false, nil
	}
	for _, id := range user.SavedJobIDs {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

// SavedJobs возвращает сохранённые вакансии, найденные в каталоге.
// Идентификаторы, которых в каталоге уже нет, молча пропускаются.
func (s *Service) SavedJobs(ctx context.Context, userID string) ([]models.Job, error) {
	const op = "ledger.SavedJobs"

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	jobs := make([]models.Job, 0, len(user.SavedJobIDs))
	for _, id := range user.SavedJobIDs {
		if job := s.catalog.GetByID(id); job != nil {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

// Applications возвращает отклики пользователя.
func (s *Service) Applications(ctx context.Context, userID string) ([]models.Application, error) {
	const op = "ledger.Applications"

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user.Applications, nil
}

// Achievements возвращает достижения пользователя.
func (s *Service) Achievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	const op = "ledger.Achievements"

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user.Achievements, nil
}

// Apply создаёт отклик на вакансию. Ровно один отклик на пару
// (пользователь, вакансия); проверка дубликата и запись выполняются одним
// атомарным циклом, поэтому конкурентные отклики на ту же вакансию не
// проходят оба. Статус всегда models.StatusRejected, причина отказа
// выбирается случайно из фиксированной таблицы. После сохранения синхронно
// вычисляются достижения; о каждом новом публикуется событие.
func (s *Service) Apply(ctx context.Context, userID, jobID string) (*models.Application, error) {
	const op = "ledger.Apply"

	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	var (
		application models.Application
		fresh       []models.Achievement
	)
	updated, err := s.accounts.UpdateWith(ctx, userID, func(u *models.User) error {
		for _, app := range u.Applications {
			if app.JobID == jobID {
				return ErrAlreadyApplied
			}
		}

		job := s.catalog.GetByID(jobID)
		if job == nil {
			return ErrJobNotFound
		}

		application = models.Application{
			ID:              uuid.NewString(),
			JobID:           job.ID,
			JobTitle:        job.Title,
			Company:         job.Company,
			AppliedDate:     time.Now().UTC(),
			Status:          models.StatusRejected,
			RejectionReason: randomRejectionReason(),
		}
		u.Applications = append(append([]models.Application(nil), u.Applications...), application)

		// достижение добавляется и анонсируется только если его ещё нет у пользователя
		fresh = nil
		for _, a := range achievements.Evaluate(len(u.Applications)) {
			if !hasAchievement(u.Achievements, a.ID) {
				fresh = append(fresh, a)
			}
		}
		if len(fresh) > 0 {
			u.Achievements = append(append([]models.Achievement(nil), u.Achievements...), fresh...)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUserNotFound):
			return nil, ErrNotAuthenticated
		case errors.Is(err, ErrAlreadyApplied), errors.Is(err, ErrJobNotFound):
			return nil, err
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	s.refreshSession(updated)

	s.log.Info("application submitted",
		slog.String("user_id", updated.ID),
		slog.String("job_id", application.JobID),
		slog.String("status", application.Status))

	for _, a := range fresh {
		event := models.AchievementEvent{
			UserID:      updated.ID,
			Email:       updated.Email,
			Name:        updated.Name,
			Achievement: a,
		}
		if err := s.notifier.PublishAchievement(event); err != nil {
			s.log.Warn("failed to publish achievement event",
				slog.String("achievement", a.ID), sl.Err(err))
		}
	}

	return &application, nil
}

// activeUser возвращает учётную запись по идентификатору либо nil,
// если идентификатор пуст или запись не найдена.
func (s *Service) activeUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, nil
	}
	return s.accounts.FindByID(ctx, userID)
}

// refreshSession обновляет копию пользователя в сессии, если сессия его же.
func (s *Service) refreshSession(u *models.User) {
	sess, err := s.session.Get()
	if err != nil || sess == nil || sess.ID != u.ID {
		return
	}
	if err := s.session.Set(u.Sanitize()); err != nil {
		s.log.Warn("failed to refresh session", sl.Err(err))
	}
}

func hasAchievement(list []models.Achievement, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
