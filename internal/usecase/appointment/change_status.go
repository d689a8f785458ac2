package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/beautybook/beautybook-api/internal/audit"
	domain "github.com/beautybook/beautybook-api/internal/domain/appointment"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	userID uuid.UUID,
	appointmentID uuid.UUID,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.ChangeStatus(ap, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
