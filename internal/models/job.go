package models

// Job представляет вакансию из внешнего каталога.
// Записи неизменяемые и доступны только на чтение: сервис их не создаёт
// и не редактирует. Инвариант salaryMin <= salaryMax предполагается,
// но источником данных не гарантируется.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Category         string   `json:"category"`
	SalaryMin        int      `json:"salaryMin"`
	SalaryMax        int      `json:"salaryMax"`
	PostedDate       string   `json:"postedDate"` // Дата публикации в формате 2006-01-02
	Description      string   `json:"description"`
	Qualifications   []string `json:"qualifications"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`
}

// CategoryAll — сентинельное значение фильтра категорий: «все вакансии».
const CategoryAll = "all"

// Ключи сортировки каталога вакансий.
const (
	SortNewest     = "newest"      // По дате публикации, новые первыми
	SortSalaryHigh = "salary-high" // По максимальной зарплате, убывание
	SortSalaryLow  = "salary-low"  // По минимальной зарплате, возрастание
)
