package appointment

import (
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(ap *models.Appointment, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	return nil
}
