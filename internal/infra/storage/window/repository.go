package window

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий еженедельных окон доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
// Инварианты окна валидируются на уровне сервиса; БД дополнительно
// защищена CHECK-ограничением end_min > start_min
func (r *Repository) Create(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns("weekday", "start_min", "end_min").
		Values(w.Weekday, w.StartMin, w.EndMin).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	return w, nil
}

// ListByWeekday получает окна указанного дня недели,
// отсортированные по времени начала
func (r *Repository) ListByWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityWindow, error) {
	return r.list(ctx, &weekday)
}

// List получает все окна, отсортированные по дню недели и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityWindow, error) {
	return r.list(ctx, nil)
}

// Delete удаляет окно по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, weekday *int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"weekday",
		"start_min",
		"end_min",
		"created_at",
	).
		From("availability_windows").
		OrderBy("weekday ASC, start_min ASC")

	if weekday != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": *weekday})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		var createdAt sql.NullTime

		if err := rows.Scan(&w.ID, &w.Weekday, &w.StartMin, &w.EndMin, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
