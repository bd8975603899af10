package models

import "time"

// StatusRejected — единственный статус отклика. Каждый отклик
// отклоняется в момент подачи, это основной сюжет сервиса.
const StatusRejected = "rejected"

// Application представляет отклик пользователя на вакансию.
// Создаётся ровно один раз на пару (пользователь, вакансия)
// и после создания не изменяется.
type Application struct {
	ID              string    `json:"id"`              // Уникальный идентификатор отклика
	JobID           string    `json:"jobId"`           // Идентификатор вакансии
	JobTitle        string    `json:"jobTitle"`        // Название вакансии на момент отклика
	Company         string    `json:"company"`         // Компания на момент отклика
	AppliedDate     time.Time `json:"appliedDate"`     // Дата подачи
	Status          string    `json:"status"`          // Всегда StatusRejected
	RejectionReason string    `json:"rejectionReason"` // Причина отказа из фиксированной таблицы
}
