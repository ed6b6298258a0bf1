package domain

// ServiceProfile scheduling-relevant parameters of a catalog service
type ServiceProfile struct {
	ID         int64
	Name       string
	Price      float64
	Duration   int // minutes the service itself occupies, must be positive
	BufferTime int // minutes appended after each booking (cleanup gap), non-negative
	GraceTime  int // late-arrival tolerance in minutes, informational only
	Active     bool
}

// TotalSlotMinutes returns the full occupied length of one slot
func (s ServiceProfile) TotalSlotMinutes() int {
	return s.Duration + s.BufferTime
}
