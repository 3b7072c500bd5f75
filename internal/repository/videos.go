package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/eduink/internal/domain/model"
)

// VideoRepository — доступ к таблице videos.
// Как и question_banks, таблица не входит в миграции.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository создаёт репозиторий видеозаписей.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = "id, class, subject, title, video_url, created_at"

// ListAll возвращает все видеозаписи, новые первыми.
func (r *VideoRepository) ListAll(ctx context.Context) ([]model.VideoRow, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSchemaMissing
		}
		return nil, fmt.Errorf("выборка видеозаписей: %w", err)
	}
	defer rows.Close()

	videos := make([]model.VideoRow, 0)
	for rows.Next() {
		var video model.VideoRow
		if err := rows.Scan(
			&video.ID, &video.Class, &video.Subject, &video.Title,
			&video.VideoURL, &video.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("чтение строки видеозаписи: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("итерация по видеозаписям: %w", err)
	}
	return videos, nil
}

// GetByID возвращает видеозапись по идентификатору.
func (r *VideoRepository) GetByID(ctx context.Context, id int64) (model.VideoRow, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE id = $1`

	var video model.VideoRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&video.ID, &video.Class, &video.Subject, &video.Title,
		&video.VideoURL, &video.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.VideoRow{}, ErrNotFound
		}
		if isUndefinedTable(err) {
			return model.VideoRow{}, ErrSchemaMissing
		}
		return model.VideoRow{}, fmt.Errorf("получение видеозаписи %d: %w", id, err)
	}
	return video, nil
}

// DeleteByID удаляет видеозапись.
func (r *VideoRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSchemaMissing
		}
		return fmt.Errorf("удаление видеозаписи %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
