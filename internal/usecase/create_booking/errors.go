package create_booking

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда сотрудник не найден
	ErrWorkerNotFound = errors.New("create_booking: worker not found")

	// ErrWorkerInactive возвращается, когда сотрудник не принимает записи
	ErrWorkerInactive = errors.New("create_booking: worker is not accepting bookings")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена в каталоге
	ErrServiceInactive = errors.New("create_booking: service is inactive")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена сотруднику
	ErrServiceNotAssigned = errors.New("create_booking: service is not assigned to this worker")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот не входит
	// в список доступных: занят, вне рабочих часов или не совпадает с сеткой
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidConfiguration возвращается, когда параметры услуги или
	// расписания не позволяют рассчитать слоты
	ErrInvalidConfiguration = errors.New("create_booking: invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
