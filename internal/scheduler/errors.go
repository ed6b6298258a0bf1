package scheduler

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("scheduler: service duration must be positive")

	// ErrInvalidBuffer возвращается при отрицательном буферном времени услуги
	ErrInvalidBuffer = errors.New("scheduler: service buffer time must be non-negative")

	// ErrMalformedHours возвращается, когда рабочие часы имеют некорректный формат времени
	ErrMalformedHours = errors.New("scheduler: malformed working hours")
)
