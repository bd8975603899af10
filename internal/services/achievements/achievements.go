// Package achievements содержит вычисление достижений по количеству откликов.
//
// Таблица порогов фиксированная: достижение выдаётся, когда суммарное число
// откликов пользователя становится ровно равным порогу. Идемпотентность
// обеспечивает вызывающий код: перед добавлением он проверяет, нет ли
// достижения с таким id у пользователя.
package achievements

import "github.com/magabrotheeeer/abandonment-garden/internal/models"

// Milestone связывает порог числа откликов с достижением.
type Milestone struct {
	Count       int
	Achievement models.Achievement
}

// Milestones — фиксированная таблица порогов.
var Milestones = []Milestone{
	{
		Count: 1,
		Achievement: models.Achievement{
			ID:          "first-app",
			Title:       "Baby Steps",
			Description: "Submitted your first application",
		},
	},
	{
		Count: 10,
		Achievement: models.Achievement{
			ID:          "10-apps",
			Title:       "Persistent",
			Description: "Submitted 10 applications",
		},
	},
	{
		Count: 50,
		Achievement: models.Achievement{
			ID:          "50-apps",
			Title:       "Unstoppable",
			Description: "Submitted 50 applications",
		},
	},
	{
		Count: 100,
		Achievement: models.Achievement{
			ID:          "100-rejections",
			Title:       "Century of Disappointment",
			Description: "Collected 100 rejections",
		},
	},
}

// Evaluate возвращает достижения, порог которых равен текущему числу откликов.
// Чистая функция: состояние пользователя она не читает и не меняет.
func Evaluate(applicationCount int) []models.Achievement {
	var unlocked []models.Achievement
	for _, m := range Milestones {
		if m.Count == applicationCount {
			unlocked = append(unlocked, m.Achievement)
		}
	}
	return unlocked
}
