package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/eduink/internal/domain/model"
)

// QuestionBankRepository — доступ к таблице question_banks.
// Таблица не создаётся миграциями; все запросы возвращают
// ErrSchemaMissing до тех пор, пока её не создадут вручную.
type QuestionBankRepository struct {
	db DBTX
}

// NewQuestionBankRepository создаёт репозиторий банков вопросов.
func NewQuestionBankRepository(db DBTX) *QuestionBankRepository {
	return &QuestionBankRepository{db: db}
}

const questionBankColumns = "id, class, subject, title, file_url, created_at"

// ListAll возвращает все банки вопросов, новые первыми.
func (r *QuestionBankRepository) ListAll(ctx context.Context) ([]model.QuestionBankRow, error) {
	query := `
		SELECT ` + questionBankColumns + `
		FROM question_banks
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSchemaMissing
		}
		return nil, fmt.Errorf("выборка банков вопросов: %w", err)
	}
	defer rows.Close()

	banks := make([]model.QuestionBankRow, 0)
	for rows.Next() {
		var bank model.QuestionBankRow
		if err := rows.Scan(
			&bank.ID, &bank.Class, &bank.Subject, &bank.Title,
			&bank.FileURL, &bank.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("чтение строки банка вопросов: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("итерация по банкам вопросов: %w", err)
	}
	return banks, nil
}

// GetByID возвращает банк вопросов по идентификатору.
func (r *QuestionBankRepository) GetByID(ctx context.Context, id int64) (model.QuestionBankRow, error) {
	query := `
		SELECT ` + questionBankColumns + `
		FROM question_banks
		WHERE id = $1`

	var bank model.QuestionBankRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bank.ID, &bank.Class, &bank.Subject, &bank.Title,
		&bank.FileURL, &bank.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.QuestionBankRow{}, ErrNotFound
		}
		if isUndefinedTable(err) {
			return model.QuestionBankRow{}, ErrSchemaMissing
		}
		return model.QuestionBankRow{}, fmt.Errorf("получение банка вопросов %d: %w", id, err)
	}
	return bank, nil
}

// DeleteByID удаляет банк вопросов.
func (r *QuestionBankRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM question_banks WHERE id = $1`, id)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSchemaMissing
		}
		return fmt.Errorf("удаление банка вопросов %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
