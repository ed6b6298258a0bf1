package schedule

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки расписания не найдены
	ErrSettingsNotFound = errors.New("schedule settings not found")

	// ErrOffDateNotFound возвращается при удалении несуществующей выходной даты
	ErrOffDateNotFound = errors.New("off date not found")

	// ErrSpecialHoursNotFound возвращается при удалении несуществующих особых часов
	ErrSpecialHoursNotFound = errors.New("special hours not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
