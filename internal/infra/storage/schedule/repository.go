package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// settingsRowID настройки расписания компании хранятся одной строкой
const settingsRowID = 1

// Repository репозиторий настроек расписания компании
// Настройки разложены по четырем таблицам: schedule_settings (валюта),
// company_working_hours (7 строк по дням недели), company_off_dates и
// company_special_hours
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get собирает настройки расписания компании из всех таблиц
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	settings, err := r.getSettingsRow(ctx, executor)
	if err != nil {
		return nil, err
	}

	workingHours, err := r.getWorkingHours(ctx, executor)
	if err != nil {
		return nil, err
	}
	settings.WorkingHours = workingHours

	offDates, err := r.getOffDates(ctx, executor)
	if err != nil {
		return nil, err
	}
	settings.OffDates = offDates

	specialHours, err := r.getSpecialHours(ctx, executor)
	if err != nil {
		return nil, err
	}
	settings.SpecialHours = specialHours

	return settings, nil
}

// UpdateWorkingHours заменяет недельное расписание компании
// Выполняет upsert по каждому дню недели
func (r *Repository) UpdateWorkingHours(ctx context.Context, hours domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, weekday := range domain.Weekdays {
		day := hours.ForWeekday(weekday)

		query, args, err := psqlbuilder.Insert("company_working_hours").
			Columns("settings_id", "weekday", "start_time", "end_time", "enabled").
			Values(settingsRowID, domain.WeekdayName(weekday), day.Start, day.End, day.Enabled).
			Suffix("ON CONFLICT (settings_id, weekday) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, enabled = EXCLUDED.enabled").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpdateWorkingHours - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpdateWorkingHours - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return r.touchSettingsRow(ctx, executor)
}

// UpdateCurrency обновляет валюту компании
func (r *Repository) UpdateCurrency(ctx context.Context, currency string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_settings").
		Set("currency", currency).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCurrency - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCurrency - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCurrency - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// AddOffDate добавляет выходную дату компании
// Повторное добавление той же даты не является ошибкой
func (r *Repository) AddOffDate(ctx context.Context, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_off_dates").
		Columns("settings_id", "off_date").
		Values(settingsRowID, date).
		Suffix("ON CONFLICT (settings_id, off_date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddOffDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddOffDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveOffDate удаляет выходную дату компании
func (r *Repository) RemoveOffDate(ctx context.Context, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("company_off_dates").
		Where(squirrel.Eq{"settings_id": settingsRowID, "off_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveOffDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveOffDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveOffDate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOffDateNotFound
	}

	return nil
}

// AddSpecialHours добавляет особые рабочие часы на конкретную дату
// Повторное добавление на ту же дату перезаписывает часы
func (r *Repository) AddSpecialHours(ctx context.Context, special domain.SpecialHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_special_hours").
		Columns("settings_id", "special_date", "start_time", "end_time").
		Values(settingsRowID, special.Date, special.Start, special.End).
		Suffix("ON CONFLICT (settings_id, special_date) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddSpecialHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddSpecialHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveSpecialHours удаляет особые рабочие часы на дату
func (r *Repository) RemoveSpecialHours(ctx context.Context, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("company_special_hours").
		Where(squirrel.Eq{"settings_id": settingsRowID, "special_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveSpecialHours - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveSpecialHours - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveSpecialHours - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSpecialHoursNotFound
	}

	return nil
}

func (r *Repository) getSettingsRow(ctx context.Context, executor DBExecutor) (*domain.ScheduleSettings, error) {
	query, args, err := psqlbuilder.Select("id", "currency", "created_at", "updated_at").
		From("schedule_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ScheduleSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.Currency,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

func (r *Repository) getWorkingHours(ctx context.Context, executor DBExecutor) (domain.WeeklySchedule, error) {
	var hours domain.WeeklySchedule

	query, args, err := psqlbuilder.Select("weekday", "start_time", "end_time", "enabled").
		From("company_working_hours").
		Where(squirrel.Eq{"settings_id": settingsRowID}).
		ToSql()
	if err != nil {
		return hours, fmt.Errorf("%w: Get - build working hours query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: Get - execute working hours query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekdayName string
		var day domain.DayHours

		if err := rows.Scan(&weekdayName, &day.Start, &day.End, &day.Enabled); err != nil {
			return hours, fmt.Errorf("%w: Get - scan working hours row: %v", ErrScanRow, err)
		}

		weekday, ok := domain.ParseWeekday(weekdayName)
		if !ok {
			return hours, fmt.Errorf("%w: Get - unknown weekday %q", ErrScanRow, weekdayName)
		}
		hours.SetForWeekday(weekday, day)
	}

	if err := rows.Err(); err != nil {
		return hours, fmt.Errorf("%w: Get - working hours rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

func (r *Repository) getOffDates(ctx context.Context, executor DBExecutor) ([]string, error) {
	query, args, err := psqlbuilder.Select("to_char(off_date, 'YYYY-MM-DD')").
		From("company_off_dates").
		Where(squirrel.Eq{"settings_id": settingsRowID}).
		OrderBy("off_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build off dates query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute off dates query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: Get - scan off date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - off dates rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

func (r *Repository) getSpecialHours(ctx context.Context, executor DBExecutor) ([]domain.SpecialHours, error) {
	query, args, err := psqlbuilder.Select("to_char(special_date, 'YYYY-MM-DD')", "start_time", "end_time").
		From("company_special_hours").
		Where(squirrel.Eq{"settings_id": settingsRowID}).
		OrderBy("special_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build special hours query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute special hours query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specials := make([]domain.SpecialHours, 0)
	for rows.Next() {
		var special domain.SpecialHours
		if err := rows.Scan(&special.Date, &special.Start, &special.End); err != nil {
			return nil, fmt.Errorf("%w: Get - scan special hours: %v", ErrScanRow, err)
		}
		specials = append(specials, special)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - special hours rows error: %v", ErrScanRow, err)
	}

	return specials, nil
}

func (r *Repository) touchSettingsRow(ctx context.Context, executor DBExecutor) error {
	query, args, err := psqlbuilder.Update("schedule_settings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: touch settings - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: touch settings - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
