package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/eduink/internal/domain/model"
)

// NoteRepository — CRUD для таблицы notes.
type NoteRepository struct {
	db DBTX
}

// NewNoteRepository создаёт репозиторий конспектов.
func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = "id, class, subject, title, caption, file_url, created_at"

// Insert сохраняет метаданные конспекта и возвращает запись
// с заполненными id и created_at.
func (r *NoteRepository) Insert(ctx context.Context, class, subject, title string, caption *string, fileURL string) (model.NoteRecord, error) {
	query := `
		INSERT INTO notes (class, subject, title, caption, file_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + noteColumns

	var note model.NoteRecord
	err := r.db.QueryRow(ctx, query, class, subject, title, caption, fileURL).Scan(
		&note.ID, &note.Class, &note.Subject, &note.Title,
		&note.Caption, &note.FileURL, &note.CreatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return model.NoteRecord{}, ErrSchemaMissing
		}
		return model.NoteRecord{}, fmt.Errorf("вставка конспекта: %w", err)
	}
	return note, nil
}

// ListByClassSubject возвращает конспекты по точному совпадению
// класса и предмета, новые первыми.
func (r *NoteRepository) ListByClassSubject(ctx context.Context, class, subject string) ([]model.NoteRecord, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE class = $1 AND subject = $2
		ORDER BY created_at DESC`

	return r.list(ctx, query, class, subject)
}

// ListBySubject возвращает конспекты по предмету, новые первыми.
func (r *NoteRepository) ListBySubject(ctx context.Context, subject string) ([]model.NoteRecord, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE subject = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, subject)
}

// ListAll возвращает все конспекты, новые первыми.
func (r *NoteRepository) ListAll(ctx context.Context) ([]model.NoteRecord, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *NoteRepository) list(ctx context.Context, query string, args ...any) ([]model.NoteRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSchemaMissing
		}
		return nil, fmt.Errorf("выборка конспектов: %w", err)
	}
	defer rows.Close()

	notes := make([]model.NoteRecord, 0)
	for rows.Next() {
		var note model.NoteRecord
		if err := rows.Scan(
			&note.ID, &note.Class, &note.Subject, &note.Title,
			&note.Caption, &note.FileURL, &note.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("чтение строки конспекта: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("итерация по конспектам: %w", err)
	}
	return notes, nil
}

// GetByID возвращает конспект по идентификатору.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (model.NoteRecord, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE id = $1`

	var note model.NoteRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&note.ID, &note.Class, &note.Subject, &note.Title,
		&note.Caption, &note.FileURL, &note.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.NoteRecord{}, ErrNotFound
		}
		if isUndefinedTable(err) {
			return model.NoteRecord{}, ErrSchemaMissing
		}
		return model.NoteRecord{}, fmt.Errorf("получение конспекта %d: %w", id, err)
	}
	return note, nil
}

// DeleteByID удаляет конспект. Возвращает ErrNotFound,
// если записи с таким id нет.
func (r *NoteRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSchemaMissing
		}
		return fmt.Errorf("удаление конспекта %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
