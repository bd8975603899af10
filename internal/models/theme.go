package models

// Темы оформления, сохраняемые как пользовательская настройка.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DummyTheme используется для приёма настройки темы из JSON-запроса.
type DummyTheme struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"` // Тема: dark или light
}
