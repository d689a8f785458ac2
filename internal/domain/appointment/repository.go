package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/beautybook/beautybook-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		userID uuid.UUID,
		clientID uuid.UUID,
	) (*models.Client, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		userID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Appointment --------
	CreateAppointmentWithItems(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		userID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
