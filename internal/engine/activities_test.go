package engine

import (
	"context"
	"errors"
	"testing"
)

func TestSubmitActivityValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	p := newTestProfile(t, svc, "Omar", 8)

	var rangeErr MinutesRangeError
	if _, err := svc.SubmitActivity(ctx, p.ID, ActivityReading, 0); !errors.As(err, &rangeErr) {
		t.Fatalf("minutes=0: expected MinutesRangeError, got %v", err)
	}
	if _, err := svc.SubmitActivity(ctx, p.ID, ActivityReading, 181); !errors.As(err, &rangeErr) {
		t.Fatalf("minutes=181: expected MinutesRangeError, got %v", err)
	}
	if _, err := svc.SubmitActivity(ctx, p.ID, "napping", 30); err == nil {
		t.Fatalf("expected error for unknown activity type")
	}

	if _, err := svc.SubmitActivity(ctx, p.ID, ActivityReading, MinMinutes); err != nil {
		t.Fatalf("minutes=%d: %v", MinMinutes, err)
	}
	if _, err := svc.SubmitActivity(ctx, p.ID, ActivityExercise, MaxMinutes); err != nil {
		t.Fatalf("minutes=%d: %v", MaxMinutes, err)
	}
	if got := len(svc.PendingActivities(p.ID)); got != 2 {
		t.Fatalf("pending=%d, want 2", got)
	}
}

func TestApproveActivity(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	p := newTestProfile(t, svc, "Tess", 6)

	entry, err := svc.SubmitActivity(ctx, p.ID, ActivityExercise, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if want := 30 * ActivityRate(ActivityExercise); entry.Reward != want {
		t.Fatalf("queued reward=%d, want %d", entry.Reward, want)
	}

	// The reward is queued, not applied.
	got, _ := svc.Profile(p.ID)
	if got.Solar != 0 {
		t.Fatalf("solar before approval=%d, want 0", got.Solar)
	}

	res, err := svc.ApproveActivity(ctx, entry.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if res.Solar != entry.Reward {
		t.Fatalf("approved solar=%d, want %d", res.Solar, entry.Reward)
	}
	got, _ = svc.Profile(p.ID)
	if got.Solar != entry.Reward {
		t.Fatalf("profile solar=%d, want %d", got.Solar, entry.Reward)
	}
	if pending := svc.PendingActivities(""); len(pending) != 0 {
		t.Fatalf("entry not removed after approval: %v", pending)
	}

	if _, err := svc.ApproveActivity(ctx, entry.ID); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("double approval: expected ErrActivityNotFound, got %v", err)
	}
}

func TestRejectActivity(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	p := newTestProfile(t, svc, "Juno", 11)

	entry, err := svc.SubmitActivity(ctx, p.ID, ActivityChores, 45)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.RejectActivity(ctx, entry.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	got, _ := svc.Profile(p.ID)
	if got.Solar != 0 || got.Crystals != 0 {
		t.Fatalf("rejection changed resources: %+v", got)
	}
	if pending := svc.PendingActivities(""); len(pending) != 0 {
		t.Fatalf("entry not removed after rejection: %v", pending)
	}
	if err := svc.RejectActivity(ctx, entry.ID); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("double rejection: expected ErrActivityNotFound, got %v", err)
	}
}

func TestApproveByIDPrefix(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	p := newTestProfile(t, svc, "Remy", 9)

	entry, err := svc.SubmitActivity(ctx, p.ID, ActivityCreative, 60)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.ApproveActivity(ctx, entry.ID[:8]); err != nil {
		t.Fatalf("approve by prefix: %v", err)
	}
	got, _ := svc.Profile(p.ID)
	if want := 60 * ActivityRate(ActivityCreative); got.Solar != want {
		t.Fatalf("solar=%d, want %d", got.Solar, want)
	}
}
