package model

import "time"

// VideoRecord — ссылка на видеоурок в volatile-каталоге.
// Файл не хранится: только внешний URL. Живёт в памяти процесса.
type VideoRecord struct {
	// ID — UUID, назначается каталогом при добавлении
	ID string `json:"id"`
	// Класс
	Class string `json:"class"`
	// Предмет
	Subject string `json:"subject"`
	// Название
	Title string `json:"title"`
	// Внешний URL видео (YouTube и т.п.)
	VideoURL string `json:"videoUrl"`
	// Время добавления (UTC)
	AddedAt time.Time `json:"addedAt"`
}
