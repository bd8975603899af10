// Package models содержит доменную модель пользователя сервиса,
// включающую данные учётной записи, хэш пароля, список сохранённых вакансий,
// отклики и полученные достижения. Структуры используются в бизнес‑логике
// и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	ID           string        `json:"id"`           // Уникальный идентификатор, выдаётся при регистрации
	Name         string        `json:"name"`         // Имя пользователя
	Email        string        `json:"email"`        // Электронная почта, естественный ключ учётной записи
	PasswordHash string        `json:"passwordHash"` // bcrypt-хэш пароля
	CreatedAt    time.Time     `json:"createdAt"`    // Дата создания учётной записи
	SavedJobIDs  []string      `json:"savedJobs"`    // Идентификаторы сохранённых вакансий
	Applications []Application `json:"applications"` // Отклики пользователя
	Achievements []Achievement `json:"achievements"` // Полученные достижения
}

// SessionUser — «очищенная» проекция пользователя без хэша пароля.
// Именно она сохраняется как текущая сессия и возвращается наружу.
type SessionUser struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	CreatedAt    time.Time     `json:"createdAt"`
	SavedJobIDs  []string      `json:"savedJobs"`
	Applications []Application `json:"applications"`
	Achievements []Achievement `json:"achievements"`
}

// Sanitize возвращает проекцию пользователя без чувствительных полей.
func (u *User) Sanitize() *SessionUser {
	return &SessionUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		SavedJobIDs:  u.SavedJobIDs,
		Applications: u.Applications,
		Achievements: u.Achievements,
	}
}

// UserUpdate описывает частичное обновление учётной записи.
// Ненулевые поля поверхностно сливаются с существующей записью,
// хэш пароля при обновлении не пересчитывается.
type UserUpdate struct {
	Name         *string
	Email        *string
	SavedJobIDs  *[]string
	Applications *[]Application
	Achievements *[]Achievement
}

// DummyRegister используется для приёма данных формы регистрации из JSON-запроса
// до их валидации и преобразования в User.
type DummyRegister struct {
	Name     string `json:"name" validate:"required"`           // Имя пользователя
	Email    string `json:"email" validate:"required,email"`    // Электронная почта
	Password string `json:"password" validate:"required,min=8"` // Пароль (не короче 8 символов)
}

// DummyLogin используется для приёма учётных данных из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required"`    // Электронная почта
	Password string `json:"password" validate:"required"` // Пароль
}

// DummyUserUpdate используется для приёма частичного обновления профиля.
type DummyUserUpdate struct {
	Name  string `json:"name,omitempty" validate:"omitempty"`        // Новое имя (опционально)
	Email string `json:"email,omitempty" validate:"omitempty,email"` // Новая почта (опционально)
}
