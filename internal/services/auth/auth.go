// Package auth содержит логику бизнес-уровня для работы с учётными записями
// и сессией: регистрация, вход, выход и обновление профиля.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/abandonment-garden/internal/lib/jwt"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/password"
	"github.com/magabrotheeeer/abandonment-garden/internal/lib/sl"
	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrMissingCredentials — не заполнена почта или пароль.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials — неизвестная почта либо неверный пароль.
	// Текст одинаковый для обоих случаев, чтобы не раскрывать,
	// какое именно поле не совпало.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateAccount — учётная запись с такой почтой уже существует.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrNotAuthenticated — операция требует активной сессии.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AccountsRepository описывает контракт хранилища учётных записей.
type AccountsRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user models.User) error
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

// SessionStore описывает контракт хранилища текущей сессии.
type SessionStore interface {
	Get() (*models.SessionUser, error)
	Set(u *models.SessionUser) error
	Clear() error
}

// Service отвечает за регистрацию, вход, выход и обновление профиля.
type Service struct {
	accounts AccountsRepository
	session  SessionStore
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(accounts AccountsRepository, session SessionStore, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		session:  session,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создаёт нового пользователя с bcrypt-хэшем пароля и пустыми
// списками сохранённых вакансий, откликов и достижений, после чего сразу
// выполняет вход с теми же учётными данными.
func (s *Service) Register(ctx context.Context, req models.DummyRegister) (*models.SessionUser, string, error) {
	const op = "auth.Register"

	existing, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, "", ErrDuplicateAccount
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
		SavedJobIDs:  []string{},
		Applications: []models.Application{},
		Achievements: []models.Achievement{},
	}
	if err := s.accounts.Insert(ctx, user); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("user_id", user.ID))

	// автоматический вход после регистрации
	return s.Login(ctx, models.DummyLogin{Email: req.Email, Password: req.Password})
}

// Login проверяет учётные данные, сохраняет «очищенного» пользователя
// как текущую сессию и возвращает его вместе с JWT.
func (s *Service) Login(ctx context.Context, req models.DummyLogin) (*models.SessionUser, string, error) {
	const op = "auth.Login"

	if req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sanitized := user.Sanitize()
	if err := s.session.Set(sanitized); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user logged in", slog.String("user_id", user.ID))
	return sanitized, token, nil
}

// Logout безусловно очищает сессию. Пути с ошибкой нет:
// сбой хранилища лишь логируется.
func (s *Service) Logout(_ context.Context) {
	if err := s.session.Clear(); err != nil {
		s.log.Warn("failed to clear session", sl.Err(err))
	}
}

// IsAuthenticated сообщает, есть ли активная сессия.
func (s *Service) IsAuthenticated() bool {
	u, err := s.session.Get()
	return err == nil && u != nil
}

// CurrentUser возвращает «очищенного» пользователя по идентификатору.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*models.SessionUser, error) {
	const op = "auth.CurrentUser"

	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	user, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user.Sanitize(), nil
}

// UpdateUser сливает непустые поля запроса в учётную запись и обновляет
// копию в сессии. Хэш пароля при обновлении не пересчитывается.
func (s *Service) UpdateUser(ctx context.Context, userID string, req models.DummyUserUpdate) (*models.SessionUser, error) {
	const op = "auth.UpdateUser"

	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	upd := models.UserUpdate{}
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Email != "" {
		upd.Email = &req.Email
	}

	user, err := s.accounts.Update(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sanitized := user.Sanitize()
	s.refreshSession(sanitized)
	return sanitized, nil
}

// refreshSession обновляет копию в сессии, если она принадлежит тому же
// пользователю. Сессия — копия записи, а не ссылка, поэтому без обновления
// она отстаёт от коллекции до следующего явного сохранения.
func (s *Service) refreshSession(u *models.SessionUser) {
	sess, err := s.session.Get()
	if err != nil || sess == nil || sess.ID != u.ID {
		return
	}
	if err := s.session.Set(u); err != nil {
		s.log.Warn("failed to refresh session", sl.Err(err))
	}
}
