package engine

import (
	"time"

	"planetpal/internal/storage"
)

// touchStreak updates the day-based streak on a reward event. A reward on the
// day after the last one extends the streak; a same-day reward leaves it
// alone; anything else restarts at 1.
func touchStreak(p *storage.Profile, now time.Time) {
	today := now.Truncate(24 * time.Hour)
	defer func() {
		t := now
		p.LastActive = &t
	}()

	if p.LastActive == nil {
		p.StreakDays = 1
		return
	}
	last := p.LastActive.Truncate(24 * time.Hour)
	switch today.Sub(last) {
	case 0:
		// Same day, streak unchanged.
	case 24 * time.Hour:
		p.StreakDays++
	default:
		p.StreakDays = 1
	}
}
