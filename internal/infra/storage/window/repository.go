package window

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const table = "availability_windows"

// Repository репозиторий окон доступности.
// Для каждого занятия в таблице хранится уже слитый (канонический) набор окон.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByLesson возвращает окна занятия, отсортированные по началу.
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(lessonID, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLesson - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLesson - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.Window, 0)
	for rows.Next() {
		var w domain.Window
		if err := rows.Scan(&w.ID, &w.LessonID, &w.Start, &w.End, &w.Price, &w.Capacity); err != nil {
			return nil, fmt.Errorf("%w: ListByLesson - scan row: %v", ErrScanRow, err)
		}
		w.Start = w.Start.UTC()
		w.End = w.End.UTC()
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByLesson - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ReplaceForLesson заменяет все окна занятия переданным набором.
// Вызывать внутри транзакции вместе с ListByLesson, иначе параллельные
// изменения перезапишут друг друга.
func (r *Repository) ReplaceForLesson(ctx context.Context, lessonID int64, windows []domain.Window) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"lesson_id": lessonID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLesson - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForLesson - execute delete: %w", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	query, args, err = insertQuery(lessonID, windows).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLesson - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForLesson - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteByID удаляет одно окно занятия
func (r *Repository) DeleteByID(ctx context.Context, lessonID int64, windowID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": windowID, "lesson_id": lessonID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func listQuery(lessonID int64, forUpdate bool) squirrel.SelectBuilder {
	q := psqlbuilder.Select("id", "lesson_id", "start_at", "end_at", "price", "capacity").
		From(table).
		Where(squirrel.Eq{"lesson_id": lessonID}).
		OrderBy("start_at ASC")

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func insertQuery(lessonID int64, windows []domain.Window) squirrel.InsertBuilder {
	q := psqlbuilder.Insert(table).
		Columns("id", "lesson_id", "start_at", "end_at", "price", "capacity")

	for _, w := range windows {
		q = q.Values(w.ID, lessonID, w.Start.UTC(), w.End.UTC(), w.Price, w.Capacity)
	}
	return q
}
