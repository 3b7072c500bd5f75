// Пакет model — доменные модели EduInk.
// Модели без бизнес-логики: записи каталога, конспектов и банка вопросов.
package model

import "time"

// NoteRecord — конспект (PDF), хранящийся в таблице notes PostgreSQL.
// Единственная сущность с реальной долговечностью: файл лежит в Object
// Storage, метаданные — в БД. JSON-теги повторяют внешний контракт API
// (snake_case, как отдаёт BaaS-хранилище).
type NoteRecord struct {
	// ID назначается базой данных (BIGINT IDENTITY)
	ID int64 `json:"id"`
	// Класс ("9th", "10th", ...)
	Class string `json:"class"`
	// Предмет
	Subject string `json:"subject"`
	// Название конспекта
	Title string `json:"title"`
	// Подпись (опционально, NULL в БД)
	Caption *string `json:"caption"`
	// Публичный URL файла в Object Storage
	FileURL string `json:"file_url"`
	// Время создания записи (назначается БД)
	CreatedAt time.Time `json:"created_at"`
}

// QuestionBankRow — строка таблицы question_banks.
// Таблица намеренно не создаётся миграциями: маршруты /api/all-questions и
// /api/delete-question обращаются к ней, но путь загрузки её не заполняет
// (унаследованное расхождение, сохранено как наблюдаемое поведение).
type QuestionBankRow struct {
	ID        int64     `json:"id"`
	Class     string    `json:"class"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoRow — строка таблицы videos (также отсутствует в миграциях,
// см. QuestionBankRow).
type VideoRow struct {
	ID        int64     `json:"id"`
	Class     string    `json:"class"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}
