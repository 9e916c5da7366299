package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planetpal/internal/storage"
)

const (
	MinAge     = 3
	MaxAge     = 12
	MaxNameLen = 24
)

// Service owns the in-memory snapshot of all game state. Both collections are
// loaded once at startup, mutated in place, and written back wholesale after
// every mutation. A failed write is logged and otherwise ignored: the session
// degrades to unpersisted in-memory state.
type Service struct {
	store *storage.Store
	log   *zap.Logger
	gen   *Generator
	rng   *rand.Rand

	mu       sync.Mutex
	profiles []storage.Profile
	pending  []storage.PendingActivity
	combos   map[string]int // session-only, keyed by profile ID
}

func NewService(ctx context.Context, store *storage.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		store:  store,
		log:    log,
		gen:    NewGenerator(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		combos: map[string]int{},
	}

	profiles, err := store.LoadProfiles(ctx)
	if err != nil {
		log.Warn("load profiles failed, starting empty", zap.Error(err))
	}
	pending, err := store.LoadActivities(ctx)
	if err != nil {
		log.Warn("load pending activities failed, starting empty", zap.Error(err))
	}
	s.profiles = profiles
	s.pending = pending
	return s
}

// Generator exposes the question generator for callers that only need
// questions.
func (s *Service) Generator() *Generator { return s.gen }

// CreateProfile validates and registers a new player.
func (s *Service) CreateProfile(ctx context.Context, name string, age int) (*storage.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLen {
		return nil, fmt.Errorf("name must be 1-%d characters", MaxNameLen)
	}
	if age < MinAge || age > MaxAge {
		return nil, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if strings.EqualFold(s.profiles[i].Name, name) {
			return nil, fmt.Errorf("profile %q already exists", name)
		}
	}

	p := storage.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Age:       age,
		Level:     1,
		CreatedAt: time.Now().UTC(),
	}
	s.profiles = append(s.profiles, p)
	s.persistProfiles(ctx)
	return &p, nil
}

// Profiles returns a copy of all profiles.
func (s *Service) Profiles() []storage.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Profile looks a profile up by ID or (case-insensitive) name.
func (s *Service) Profile(ref string) (*storage.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProfile(ref)
	if p == nil {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

// Combo returns the current session combo for a profile.
func (s *Service) Combo(profileID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combos[profileID]
}

// findProfile must be called with s.mu held. Matches ID first, then name.
func (s *Service) findProfile(ref string) *storage.Profile {
	for i := range s.profiles {
		if s.profiles[i].ID == ref {
			return &s.profiles[i]
		}
	}
	for i := range s.profiles {
		if strings.EqualFold(s.profiles[i].Name, ref) {
			return &s.profiles[i]
		}
	}
	return nil
}

// persistProfiles must be called with s.mu held.
func (s *Service) persistProfiles(ctx context.Context) {
	if err := s.store.SaveProfiles(ctx, s.profiles); err != nil {
		s.log.Warn("persist profiles failed, keeping in-memory state", zap.Error(err))
	}
}

// persistPending must be called with s.mu held.
func (s *Service) persistPending(ctx context.Context) {
	if err := s.store.SaveActivities(ctx, s.pending); err != nil {
		s.log.Warn("persist pending activities failed, keeping in-memory state", zap.Error(err))
	}
}

// persistAll must be called with s.mu held.
func (s *Service) persistAll(ctx context.Context) {
	if err := s.store.SaveAll(ctx, s.profiles, s.pending); err != nil {
		s.log.Warn("persist snapshots failed, keeping in-memory state", zap.Error(err))
	}
}

func resourceAmount(p *storage.Profile, r Resource) int {
	switch r {
	case ResourceCrystals:
		return p.Crystals
	case ResourceStardust:
		return p.Stardust
	case ResourceWater:
		return p.Water
	case ResourceSolar:
		return p.Solar
	default:
		return 0
	}
}

func addResource(p *storage.Profile, r Resource, n int) {
	switch r {
	case ResourceCrystals:
		p.Crystals += n
	case ResourceStardust:
		p.Stardust += n
	case ResourceWater:
		p.Water += n
	case ResourceSolar:
		p.Solar += n
	}
}
