package model

import "time"

// Типы файлов вопросников.
const (
	// FileTypePDF — загруженный файл является PDF-документом.
	FileTypePDF = "pdf"
	// FileTypeImage — любой не-PDF файл считается изображением.
	FileTypeImage = "image"
)

// QuestionRecord — вопросник (экзаменационная работа) в volatile-каталоге.
// Живёт только в памяти процесса и исчезает при рестарте; в Metadata
// Repository никогда не попадает. JSON-теги повторяют внешний контракт
// (camelCase, как в исходном API).
type QuestionRecord struct {
	// ID — UUID, назначается каталогом при добавлении
	ID string `json:"id"`
	// Класс
	Class string `json:"class"`
	// Предмет
	Subject string `json:"subject"`
	// Название
	Title string `json:"title"`
	// Публичный URL файла в Object Storage
	FileURL string `json:"fileUrl"`
	// Тип файла: pdf или image
	FileType string `json:"fileType"`
	// Время загрузки (UTC)
	UploadedAt time.Time `json:"uploadedAt"`
}
