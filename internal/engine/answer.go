package engine

import (
	"context"
	"fmt"
	"time"
)

// AnswerResult reports everything a reward event changed. CorrectAnswer is
// always set so callers can show the right option without holding on to the
// question.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Combo         int
	Multiplier    float64
	Reward        int
	Resource      Resource
	XPAwarded     int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	BonusCrystals int
	StreakDays    int
}

// SubmitAnswer scores one answered question for a profile. A correct answer
// bumps the session combo, credits the subject's resource at the combo
// multiplier, grants flat XP and a level-up bonus when a boundary is crossed,
// and touches the day streak. A wrong answer only resets the combo.
func (s *Service) SubmitAnswer(ctx context.Context, profileID string, q Question, choice int) (*AnswerResult, error) {
	if choice < 0 || choice >= len(q.Options) {
		return nil, fmt.Errorf("choice %d out of range (0-%d)", choice, len(q.Options)-1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProfile(profileID)
	if p == nil {
		return nil, ErrProfileNotFound
	}

	if choice != q.Answer {
		s.combos[p.ID] = 0
		return &AnswerResult{
			Correct:       false,
			CorrectAnswer: q.Options[q.Answer],
			Combo:         0,
			Multiplier:    ComboMultiplier(0),
			LevelBefore:   p.Level,
			LevelAfter:    p.Level,
			StreakDays:    p.StreakDays,
		}, nil
	}

	combo := s.combos[p.ID] + 1
	s.combos[p.ID] = combo
	mult := ComboMultiplier(combo)
	reward, res := RewardForAnswer(q.Subject, combo)
	addResource(p, res, reward)

	levelBefore := p.Level
	p.XP += XPPerCorrect
	p.Level = LevelForXP(p.XP)

	bonus := 0
	if p.Level > levelBefore {
		bonus = LevelBonusCrystals * p.Level
		p.Crystals += bonus
	}

	touchStreak(p, time.Now().UTC())
	s.persistProfiles(ctx)

	return &AnswerResult{
		Correct:       true,
		CorrectAnswer: q.Options[q.Answer],
		Combo:         combo,
		Multiplier:    mult,
		Reward:        reward,
		Resource:      res,
		XPAwarded:     XPPerCorrect,
		LevelBefore:   levelBefore,
		LevelAfter:    p.Level,
		LevelUp:       p.Level > levelBefore,
		BonusCrystals: bonus,
		StreakDays:    p.StreakDays,
	}, nil
}
