package get_available_slots

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда сотрудник не найден
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrWorkerInactive возвращается, когда сотрудник не принимает записи
	ErrWorkerInactive = errors.New("worker is not accepting bookings")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInactive возвращается, когда услуга отключена в каталоге
	ErrServiceInactive = errors.New("service is inactive")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена сотруднику
	ErrServiceNotAssigned = errors.New("service is not assigned to this worker")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidConfiguration возвращается, когда параметры услуги или расписания
	// не позволяют рассчитать слоты (нулевая длительность, битый формат времени)
	ErrInvalidConfiguration = errors.New("invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
