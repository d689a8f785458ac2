package billing

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

	// -------- Account (header + installments, uma transação) --------
	CreateAccountWithInstallments(
		ctx context.Context,
		acc *models.AccountReceivable,
	) error

	GetAccount(
		ctx context.Context,
		userID uuid.UUID,
		accountID uuid.UUID,
	) (*models.AccountReceivable, error)

	ListAccounts(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.AccountReceivable, error)

	UpdateAccount(
		ctx context.Context,
		acc *models.AccountReceivable,
	) error

	DeleteAccount(
		ctx context.Context,
		userID uuid.UUID,
		accountID uuid.UUID,
	) error

	// -------- Installment --------
	GetInstallmentByNumber(
		ctx context.Context,
		userID uuid.UUID,
		accountID uuid.UUID,
		number int,
	) (*models.Installment, error)

	UpdateInstallment(
		ctx context.Context,
		inst *models.Installment,
	) error
}
