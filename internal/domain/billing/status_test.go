package billing

import (
	"testing"
	"time"

	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

func TestMarkPaidFromPending(t *testing.T) {
	inst := &models.Installment{
		Status:  string(StatusPending),
		DueDate: date(2024, time.March, 1),
	}

	now := date(2024, time.March, 5)
	if err := MarkPaid(inst, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inst.Status != string(StatusPaid) {
		t.Errorf("status = %q, want %q", inst.Status, StatusPaid)
	}
	if inst.PaymentDate == nil || !inst.PaymentDate.Equal(now) {
		t.Errorf("payment date = %v, want %v", inst.PaymentDate, now)
	}
}

func TestMarkPaidFromOverdue(t *testing.T) {
	inst := &models.Installment{
		Status:  string(StatusOverdue),
		DueDate: date(2024, time.January, 1),
	}

	if err := MarkPaid(inst, date(2024, time.February, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inst.Status != string(StatusPaid) {
		t.Errorf("status = %q, want %q", inst.Status, StatusPaid)
	}
}

func TestMarkPaidIsOneWay(t *testing.T) {
	original := date(2024, time.March, 5)
	inst := &models.Installment{
		Status:      string(StatusPaid),
		PaymentDate: &original,
	}

	err := MarkPaid(inst, date(2024, time.April, 1))
	if !httperr.IsBusiness(err, "installment_already_paid") {
		t.Fatalf("expected installment_already_paid, got %v", err)
	}

	if inst.Status != string(StatusPaid) {
		t.Errorf("status changed to %q", inst.Status)
	}
	if !inst.PaymentDate.Equal(original) {
		t.Errorf("payment date changed to %v", inst.PaymentDate)
	}
}

func TestIsOverdue(t *testing.T) {
	today := date(2024, time.June, 15)

	cases := []struct {
		name    string
		status  Status
		dueDate time.Time
		want    bool
	}{
		{"pending past due", StatusPending, date(2024, time.June, 14), true},
		{"pending due today", StatusPending, today, false},
		{"pending future", StatusPending, date(2024, time.July, 1), false},
		{"paid past due", StatusPaid, date(2024, time.June, 1), false},
		{"already overdue", StatusOverdue, date(2024, time.June, 1), false},
	}

	for _, tc := range cases {
		inst := &models.Installment{
			Status:  string(tc.status),
			DueDate: tc.dueDate,
		}
		if got := IsOverdue(inst, today); got != tc.want {
			t.Errorf("%s: IsOverdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}
