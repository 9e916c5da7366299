package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planetpal/internal/storage"
)

// Offline activity types and their solar-energy rates per minute.
type ActivityType string

const (
	ActivityReading  ActivityType = "reading"
	ActivityExercise ActivityType = "exercise"
	ActivityChores   ActivityType = "chores"
	ActivityCreative ActivityType = "creative"
)

const (
	MinMinutes = 1
	MaxMinutes = 180
)

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityReading, ActivityExercise, ActivityChores, ActivityCreative:
		return true
	default:
		return false
	}
}

// ActivityRate returns the solar-energy grant per minute for an activity.
func ActivityRate(a ActivityType) int {
	switch a {
	case ActivityExercise:
		return 3
	case ActivityCreative:
		return 1
	default: // reading, chores
		return 2
	}
}

// ActivityTypes lists all valid types in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{ActivityReading, ActivityExercise, ActivityChores, ActivityCreative}
}

// SubmitActivity queues a self-reported offline activity. The reward is
// computed now (minutes × rate) but only credited on approval.
func (s *Service) SubmitActivity(ctx context.Context, profileID string, typ ActivityType, minutes int) (*storage.PendingActivity, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("unknown activity type %q", typ)
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		return nil, MinutesRangeError{Minutes: minutes}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProfile(profileID)
	if p == nil {
		return nil, ErrProfileNotFound
	}

	entry := storage.PendingActivity{
		ID:          uuid.NewString(),
		ProfileID:   p.ID,
		Type:        string(typ),
		Minutes:     minutes,
		Reward:      minutes * ActivityRate(typ),
		SubmittedAt: time.Now().UTC(),
	}
	s.pending = append(s.pending, entry)
	s.persistPending(ctx)
	return &entry, nil
}

// PendingActivities returns a copy of the queue, optionally filtered by
// profile (empty ref means all).
func (s *Service) PendingActivities(profileRef string) []storage.PendingActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profileID string
	if profileRef != "" {
		if p := s.findProfile(profileRef); p != nil {
			profileID = p.ID
		}
	}

	var out []storage.PendingActivity
	for _, a := range s.pending {
		if profileRef != "" && a.ProfileID != profileID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ApproveResult reports an applied activity reward.
type ApproveResult struct {
	Activity   storage.PendingActivity
	Solar      int
	StreakDays int
}

// ApproveActivity credits the stored solar reward to the submitting profile
// and removes the entry. Both snapshots are written in one transaction.
func (s *Service) ApproveActivity(ctx context.Context, id string) (*ApproveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.pendingIndex(id)
	if idx < 0 {
		return nil, ErrActivityNotFound
	}
	entry := s.pending[idx]

	p := s.findProfile(entry.ProfileID)
	if p == nil {
		return nil, ErrProfileNotFound
	}

	p.Solar += entry.Reward
	touchStreak(p, time.Now().UTC())
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	s.persistAll(ctx)

	return &ApproveResult{Activity: entry, Solar: entry.Reward, StreakDays: p.StreakDays}, nil
}

// RejectActivity discards a queued entry with no resource change.
func (s *Service) RejectActivity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.pendingIndex(id)
	if idx < 0 {
		return ErrActivityNotFound
	}
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	s.persistPending(ctx)
	return nil
}

// pendingIndex must be called with s.mu held. Accepts a full ID or a unique
// prefix so the CLI can use short IDs.
func (s *Service) pendingIndex(id string) int {
	match := -1
	for i := range s.pending {
		if s.pending[i].ID == id {
			return i
		}
		if len(id) >= 4 && len(id) < len(s.pending[i].ID) && s.pending[i].ID[:len(id)] == id {
			if match >= 0 {
				return -1 // ambiguous prefix
			}
			match = i
		}
	}
	return match
}
