package schedule

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки расписания не найдены
	ErrSettingsNotFound = errors.New("schedule.repository: settings not found")

	// ErrOffDateNotFound возвращается, когда выходная дата не найдена
	ErrOffDateNotFound = errors.New("schedule.repository: off date not found")

	// ErrSpecialHoursNotFound возвращается, когда особые часы не найдены
	ErrSpecialHoursNotFound = errors.New("schedule.repository: special hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
