package receivable

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beautybook/beautybook-api/internal/audit"
	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	clients  map[uuid.UUID]*models.Client
	accounts map[uuid.UUID]*models.AccountReceivable
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:  map[uuid.UUID]*models.Client{},
		accounts: map[uuid.UUID]*models.AccountReceivable{},
	}
}

func (r *fakeRepo) addClient(userID uuid.UUID, name string) *models.Client {
	c := &models.Client{ID: uuid.New(), UserID: userID, Name: name}
	r.clients[c.ID] = c
	return c
}

func (r *fakeRepo) GetClient(_ context.Context, userID, clientID uuid.UUID) (*models.Client, error) {
	c, ok := r.clients[clientID]
	if !ok || c.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeRepo) CreateAccountWithInstallments(_ context.Context, acc *models.AccountReceivable) error {
	acc.ID = uuid.New()
	for i := range acc.Installments {
		acc.Installments[i].ID = uuid.New()
		acc.Installments[i].AccountID = acc.ID
	}
	stored := *acc
	stored.Installments = append([]models.Installment(nil), acc.Installments...)
	r.accounts[acc.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAccount(_ context.Context, userID, accountID uuid.UUID) (*models.AccountReceivable, error) {
	acc, ok := r.accounts[accountID]
	if !ok || acc.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *acc
	copied.Installments = append([]models.Installment(nil), acc.Installments...)
	return &copied, nil
}

func (r *fakeRepo) ListAccounts(_ context.Context, userID uuid.UUID) ([]models.AccountReceivable, error) {
	var out []models.AccountReceivable
	for _, acc := range r.accounts {
		if acc.UserID == userID {
			out = append(out, *acc)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAccount(_ context.Context, acc *models.AccountReceivable) error {
	stored, ok := r.accounts[acc.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Title = acc.Title
	stored.TotalAmount = acc.TotalAmount
	return nil
}

func (r *fakeRepo) DeleteAccount(_ context.Context, userID, accountID uuid.UUID) error {
	acc, ok := r.accounts[accountID]
	if !ok || acc.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.accounts, accountID)
	return nil
}

func (r *fakeRepo) GetInstallmentByNumber(_ context.Context, userID, accountID uuid.UUID, number int) (*models.Installment, error) {
	acc, ok := r.accounts[accountID]
	if !ok || acc.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range acc.Installments {
		if acc.Installments[i].Number == number {
			copied := acc.Installments[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateInstallment(_ context.Context, inst *models.Installment) error {
	acc, ok := r.accounts[inst.AccountID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range acc.Installments {
		if acc.Installments[i].ID == inst.ID {
			acc.Installments[i] = *inst
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAccountGeneratesInstallments(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	client := repo.addClient(userID, "Maria Silva")

	uc := NewCreateAccount(repo, testDispatcher())

	acc, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:       userID,
		ClientID:     client.ID,
		Title:        "Pacote mensal",
		TotalAmount:  300.00,
		Installments: 3,
		FirstDueDate: "2024-04-01",
		IntervalDays: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if acc.ClientName != "Maria Silva" {
		t.Errorf("client name = %q, want denormalized client name", acc.ClientName)
	}
	if len(acc.Installments) != 3 {
		t.Fatalf("installments = %d, want 3", len(acc.Installments))
	}

	var sum float64
	for i, inst := range acc.Installments {
		sum += inst.Amount
		if inst.Number != i+1 {
			t.Errorf("installment %d has number %d", i, inst.Number)
		}
		if inst.Status != "pendente" {
			t.Errorf("installment %d status = %q, want pendente", inst.Number, inst.Status)
		}
	}
	if math.Abs(sum-300.00) > 1e-9 {
		t.Errorf("installment sum = %v, want 300.00", sum)
	}

	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, acc.Installments[1].DueDate.Location())
	if !acc.Installments[1].DueDate.Equal(want) {
		t.Errorf("second due date = %v, want %v", acc.Installments[1].DueDate, want)
	}
}

func TestCreateAccountDefaultsToSingleInstallment(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	client := repo.addClient(userID, "João")

	uc := NewCreateAccount(repo, testDispatcher())

	acc, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:       userID,
		ClientID:     client.ID,
		Title:        "Corte",
		TotalAmount:  50.00,
		FirstDueDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(acc.Installments) != 1 {
		t.Fatalf("installments = %d, want 1", len(acc.Installments))
	}
	if acc.Installments[0].Amount != 50.00 {
		t.Errorf("amount = %v, want 50.00", acc.Installments[0].Amount)
	}
}

func TestCreateAccountRejectsForeignClient(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	intruder := uuid.New()
	client := repo.addClient(owner, "Cliente do A")

	uc := NewCreateAccount(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:      intruder,
		ClientID:    client.ID,
		Title:       "Conta indevida",
		TotalAmount: 100.00,
	})
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("expected client_not_found, got %v", err)
	}

	if len(repo.accounts) != 0 {
		t.Errorf("account was created for a client owned by another user")
	}
}

func TestCreateAccountRejectsInvalidInstallmentCount(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	client := repo.addClient(userID, "Ana")

	uc := NewCreateAccount(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:       userID,
		ClientID:     client.ID,
		Title:        "Pacote",
		TotalAmount:  100.00,
		Installments: -2,
	})
	if !httperr.IsBusiness(err, "invalid_installment_count") {
		t.Fatalf("expected invalid_installment_count, got %v", err)
	}
}

func TestCreateAccountRejectsBadDueDate(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	client := repo.addClient(userID, "Ana")

	uc := NewCreateAccount(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:       userID,
		ClientID:     client.ID,
		Title:        "Pacote",
		TotalAmount:  100.00,
		FirstDueDate: "01/04/2024",
	})
	if !httperr.IsBusiness(err, "invalid_due_date") {
		t.Fatalf("expected invalid_due_date, got %v", err)
	}
}

// ======================================================
// MARK PAID
// ======================================================

func TestMarkInstallmentPaid(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	client := repo.addClient(userID, "Maria")

	createUC := NewCreateAccount(repo, testDispatcher())
	acc, err := createUC.Execute(context.Background(), CreateAccountInput{
		UserID:       userID,
		ClientID:     client.ID,
		Title:        "Pacote",
		TotalAmount:  200.00,
		Installments: 2,
		FirstDueDate: "2024-01-10",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	uc := NewMarkInstallmentPaid(repo, testDispatcher())

	fresh, err := uc.Execute(context.Background(), userID, acc.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fresh.Installments[0].Status != "pago" {
		t.Errorf("installment 1 status = %q, want pago", fresh.Installments[0].Status)
	}
	if fresh.Installments[0].PaymentDate == nil {
		t.Errorf("installment 1 has no payment date")
	}
	if fresh.Installments[1].Status != "pendente" {
		t.Errorf("installment 2 status = %q, want untouched", fresh.Installments[1].Status)
	}

	// Segunda chamada não repaga nem muda a data
	firstPayment := *fresh.Installments[0].PaymentDate
	_, err = uc.Execute(context.Background(), userID, acc.ID, 1)
	if !httperr.IsBusiness(err, "installment_already_paid") {
		t.Fatalf("expected installment_already_paid, got %v", err)
	}

	stored, _ := repo.GetInstallmentByNumber(context.Background(), userID, acc.ID, 1)
	if !stored.PaymentDate.Equal(firstPayment) {
		t.Errorf("payment date changed on repeated call")
	}
}

func TestMarkInstallmentPaidScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	intruder := uuid.New()
	client := repo.addClient(owner, "Maria")

	createUC := NewCreateAccount(repo, testDispatcher())
	acc, err := createUC.Execute(context.Background(), CreateAccountInput{
		UserID:       owner,
		ClientID:     client.ID,
		Title:        "Pacote",
		TotalAmount:  100.00,
		FirstDueDate: "2024-01-10",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	uc := NewMarkInstallmentPaid(repo, testDispatcher())

	_, err = uc.Execute(context.Background(), intruder, acc.ID, 1)
	if !httperr.IsBusiness(err, "installment_not_found") {
		t.Fatalf("expected installment_not_found, got %v", err)
	}

	stored, _ := repo.GetInstallmentByNumber(context.Background(), owner, acc.ID, 1)
	if stored.Status != "pendente" {
		t.Errorf("installment mutated by another user: status = %q", stored.Status)
	}
}
