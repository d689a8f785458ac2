package appointment

import "github.com/beautybook/beautybook-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	// completed e cancelled são terminais
}

// CanTransition valida a mudança de status pedida pelo usuário.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusScheduled
}
