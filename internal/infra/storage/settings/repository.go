package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const table = "lesson_slot_settings"

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек бронирования занятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLesson получает настройки занятия.
// Если настройки не сохранены, возвращает ErrSettingsNotFound: вызывающий
// подставляет domain.DefaultLessonSettings.
func (r *Repository) GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"lesson_id",
		"slot_duration_minutes",
		"pick_granularity_minutes",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"lesson_id": lessonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLesson - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.LessonSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.LessonID,
		&s.SlotDurationMinutes,
		&s.PickGranularityMinutes,
		&s.AdvanceBookingDays,
		&s.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLesson - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки занятия, перезаписывая существующие
func (r *Repository) Upsert(ctx context.Context, s *domain.LessonSettings) (*domain.LessonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertQuery(s).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

func upsertQuery(s *domain.LessonSettings) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(
			"lesson_id",
			"slot_duration_minutes",
			"pick_granularity_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			s.LessonID,
			s.SlotDurationMinutes,
			s.PickGranularityMinutes,
			s.AdvanceBookingDays,
			s.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (lesson_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			pick_granularity_minutes = EXCLUDED.pick_granularity_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`)
}
