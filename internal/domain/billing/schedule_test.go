package billing

import (
	"math"
	"testing"
	"time"

	"github.com/beautybook/beautybook-api/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildScheduleSingleInstallment(t *testing.T) {
	plans, err := BuildSchedule(120.00, 1, date(2024, time.March, 1), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plans) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(plans))
	}

	p := plans[0]
	if p.Number != 1 {
		t.Errorf("number = %d, want 1", p.Number)
	}
	if p.Amount != 120.00 {
		t.Errorf("amount = %v, want 120.00", p.Amount)
	}
	if !p.DueDate.Equal(date(2024, time.March, 1)) {
		t.Errorf("due date = %v, want 2024-03-01", p.DueDate)
	}
	if p.Status != StatusPending {
		t.Errorf("status = %v, want %v", p.Status, StatusPending)
	}
}

func TestBuildScheduleTwoInstallments(t *testing.T) {
	plans, err := BuildSchedule(200.00, 2, date(2024, time.January, 10), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plans) != 2 {
		t.Fatalf("expected 2 installments, got %d", len(plans))
	}

	if plans[0].Amount != 100.00 || plans[1].Amount != 100.00 {
		t.Errorf("amounts = %v, %v, want 100.00 each", plans[0].Amount, plans[1].Amount)
	}
	if !plans[0].DueDate.Equal(date(2024, time.January, 10)) {
		t.Errorf("first due date = %v, want 2024-01-10", plans[0].DueDate)
	}
	if !plans[1].DueDate.Equal(date(2024, time.February, 9)) {
		t.Errorf("second due date = %v, want 2024-02-09", plans[1].DueDate)
	}
}

func TestBuildScheduleSumInvariant(t *testing.T) {
	cases := []struct {
		total float64
		count int
	}{
		{100.00, 3},
		{99.99, 7},
		{150.50, 4},
		{0.01, 1},
		{1000.00, 12},
		{33.33, 2},
	}

	for _, tc := range cases {
		plans, err := BuildSchedule(tc.total, tc.count, date(2024, time.June, 1), 30)
		if err != nil {
			t.Fatalf("BuildSchedule(%v, %d): %v", tc.total, tc.count, err)
		}

		var sum float64
		for _, p := range plans {
			sum += p.Amount
		}

		if math.Abs(sum-tc.total) > 1e-9 {
			t.Errorf("BuildSchedule(%v, %d): sum = %v, want %v",
				tc.total, tc.count, sum, tc.total)
		}
	}
}

func TestBuildScheduleRemainderGoesToLast(t *testing.T) {
	// 100.00 / 3 = 33.33 + 33.33 + 33.34
	plans, err := BuildSchedule(100.00, 3, date(2024, time.June, 1), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plans[0].Amount != 33.33 || plans[1].Amount != 33.33 {
		t.Errorf("base amounts = %v, %v, want 33.33", plans[0].Amount, plans[1].Amount)
	}
	if plans[2].Amount != 33.34 {
		t.Errorf("last amount = %v, want 33.34", plans[2].Amount)
	}
}

func TestBuildScheduleDateSpacing(t *testing.T) {
	first := date(2024, time.January, 31)
	interval := 15
	count := 6

	plans, err := BuildSchedule(600.00, count, first, interval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, p := range plans {
		want := first.AddDate(0, 0, i*interval)
		if !p.DueDate.Equal(want) {
			t.Errorf("installment %d due = %v, want %v", p.Number, p.DueDate, want)
		}
	}
}

func TestBuildScheduleDefaultInterval(t *testing.T) {
	plans, err := BuildSchedule(90.00, 3, date(2024, time.May, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !plans[1].DueDate.Equal(date(2024, time.May, 31)) {
		t.Errorf("second due = %v, want 30 days after first", plans[1].DueDate)
	}
}

func TestBuildScheduleRejectsInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, -10} {
		_, err := BuildSchedule(100.00, count, date(2024, time.June, 1), 30)
		if !httperr.IsBusiness(err, "invalid_installment_count") {
			t.Errorf("count=%d: expected invalid_installment_count, got %v", count, err)
		}
	}
}

func TestBuildScheduleRejectsInvalidTotal(t *testing.T) {
	for _, total := range []float64{0, -50.00} {
		_, err := BuildSchedule(total, 2, date(2024, time.June, 1), 30)
		if !httperr.IsBusiness(err, "invalid_total_amount") {
			t.Errorf("total=%v: expected invalid_total_amount, got %v", total, err)
		}
	}
}
