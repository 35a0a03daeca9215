package domain

import "testing"

func TestRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestPending, RequestSuccessful, true},
		{RequestPending, RequestRejected, true},
		{RequestPending, RequestPending, false},
		{RequestSuccessful, RequestRejected, false},
		{RequestSuccessful, RequestPending, false},
		{RequestRejected, RequestSuccessful, false},
		{RequestRejected, RequestPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestDonationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{DonationScheduled, DonationCompleted, true},
		{DonationScheduled, DonationCancelled, true},
		{DonationScheduled, DonationScheduled, false},
		{DonationCompleted, DonationCancelled, false},
		{DonationCompleted, DonationScheduled, false},
		{DonationCancelled, DonationCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTransitionTargets(t *testing.T) {
	if RequestPending.CanBeTransitionTarget() {
		t.Error("pending must not be a transition target")
	}
	if !RequestSuccessful.CanBeTransitionTarget() || !RequestRejected.CanBeTransitionTarget() {
		t.Error("successful and rejected must be transition targets")
	}
	if DonationScheduled.CanBeTransitionTarget() {
		t.Error("scheduled must not be a transition target")
	}
	if !DonationCompleted.CanBeTransitionTarget() || !DonationCancelled.CanBeTransitionTarget() {
		t.Error("completed and cancelled must be transition targets")
	}
}
