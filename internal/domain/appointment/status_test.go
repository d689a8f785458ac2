package appointment

import (
	"testing"

	"github.com/beautybook/beautybook-api/internal/httperr"
	"github.com/beautybook/beautybook-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("%s -> %s: expected invalid_state, got %v", tc.from, tc.to, err)
		}
	}
}

func TestChangeStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := ChangeStatus(ap, StatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Errorf("status = %q, want confirmed", ap.Status)
	}

	if err := ChangeStatus(ap, StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Estado terminal
	err := ChangeStatus(ap, StatusCancelled)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("expected invalid_state, got %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status changed to %q after rejected transition", ap.Status)
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	err := ChangeStatus(ap, Status("archived"))
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("expected invalid_status, got %v", err)
	}
}
