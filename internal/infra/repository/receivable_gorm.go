package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/models"
)

type ReceivableGormRepository struct {
	db *gorm.DB
}

func NewReceivableGormRepository(db *gorm.DB) *ReceivableGormRepository {
	return &ReceivableGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ReceivableGormRepository) GetClient(
	ctx context.Context,
	userID uuid.UUID,
	clientID uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Account
// --------------------------------------------------

// CreateAccountWithInstallments grava o cabeçalho e todas as parcelas
// numa única transação. Ou tudo entra, ou nada entra.
func (r *ReceivableGormRepository) CreateAccountWithInstallments(
	ctx context.Context,
	acc *models.AccountReceivable,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		installments := acc.Installments
		acc.Installments = nil

		if err := tx.Create(acc).Error; err != nil {
			return err
		}

		for i := range installments {
			installments[i].AccountID = acc.ID
		}

		if len(installments) > 0 {
			if err := tx.Create(&installments).Error; err != nil {
				return err
			}
		}

		acc.Installments = installments
		return nil
	})
}

func (r *ReceivableGormRepository) GetAccount(
	ctx context.Context,
	userID uuid.UUID,
	accountID uuid.UUID,
) (*models.AccountReceivable, error) {

	var acc models.AccountReceivable
	if err := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&acc).Error; err != nil {
		return nil, err
	}

	return &acc, nil
}

func (r *ReceivableGormRepository) ListAccounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.AccountReceivable, error) {

	var accounts []models.AccountReceivable
	if err := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *ReceivableGormRepository) UpdateAccount(
	ctx context.Context,
	acc *models.AccountReceivable,
) error {
	return r.db.WithContext(ctx).
		Omit("Installments").
		Save(acc).Error
}

func (r *ReceivableGormRepository) DeleteAccount(
	ctx context.Context,
	userID uuid.UUID,
	accountID uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		Delete(&models.AccountReceivable{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// --------------------------------------------------
// Installment
// --------------------------------------------------

func (r *ReceivableGormRepository) GetInstallmentByNumber(
	ctx context.Context,
	userID uuid.UUID,
	accountID uuid.UUID,
	number int,
) (*models.Installment, error) {

	var inst models.Installment
	if err := r.db.WithContext(ctx).
		Joins("JOIN accounts_receivable ON accounts_receivable.id = installments.account_id").
		Where(
			"installments.account_id = ? AND installments.number = ? AND accounts_receivable.user_id = ?",
			accountID, number, userID,
		).
		First(&inst).Error; err != nil {
		return nil, err
	}

	return &inst, nil
}

func (r *ReceivableGormRepository) UpdateInstallment(
	ctx context.Context,
	inst *models.Installment,
) error {
	return r.db.WithContext(ctx).Save(inst).Error
}
