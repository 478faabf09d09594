package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// InitialStatus is the status every new booking is created with,
// regardless of what the caller submits.
func InitialStatus() Status {
	return StatusScheduled
}
