package engine

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrActivityNotFound = errors.New("pending activity not found")
)

// InsufficientResourcesError reports the first counter that falls short of an
// item's cost. Reported before any debit, so the profile is untouched.
type InsufficientResourcesError struct {
	Resource Resource
	Need     int
	Have     int
}

func (e InsufficientResourcesError) Error() string {
	return fmt.Sprintf("not enough %s: need %d, have %d", e.Resource, e.Need, e.Have)
}

// AlreadyUnlockedError is returned for a repeat purchase of a one-time unlock.
type AlreadyUnlockedError struct {
	Category ItemCategory
	Kind     string
}

func (e AlreadyUnlockedError) Error() string {
	return fmt.Sprintf("%s %q is already unlocked", e.Category, e.Kind)
}

// MinutesRangeError is returned when a logged activity duration is outside
// the accepted bounds.
type MinutesRangeError struct {
	Minutes int
}

func (e MinutesRangeError) Error() string {
	return fmt.Sprintf("minutes must be between %d and %d (got %d)", MinMinutes, MaxMinutes, e.Minutes)
}
