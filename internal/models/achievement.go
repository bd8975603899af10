package models

// Achievement представляет достижение пользователя из фиксированной
// таблицы порогов по количеству откликов. Конкретный идентификатор
// достижения встречается у пользователя не более одного раза.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementEvent — событие о новом достижении, публикуемое в очередь
// уведомлений после успешного отклика.
type AchievementEvent struct {
	UserID      string      `json:"user_id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Achievement Achievement `json:"achievement"`
}
