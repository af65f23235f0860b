package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func startedAgo(d time.Duration) *time.Time {
	t := time.Now().Add(-d)
	return &t
}

func TestIsDayUnlocked(t *testing.T) {
	g := SharedLearningGoal{Duration: 7}

	assert.False(t, g.IsDayUnlocked(1), "not unlocked before acceptance")

	g.StartedAt = startedAgo(1 * time.Hour)
	assert.True(t, g.IsDayUnlocked(1))
	assert.False(t, g.IsDayUnlocked(2))

	g.StartedAt = startedAgo(25 * time.Hour)
	assert.True(t, g.IsDayUnlocked(1))
	assert.True(t, g.IsDayUnlocked(2))
	assert.False(t, g.IsDayUnlocked(3))

	g.StartedAt = startedAgo(72*time.Hour + time.Minute)
	assert.True(t, g.IsDayUnlocked(4))
	assert.False(t, g.IsDayUnlocked(5))
}

func TestCurrentDay(t *testing.T) {
	g := SharedLearningGoal{Duration: 3}

	assert.Equal(t, 0, g.CurrentDay(), "zero before acceptance")

	g.StartedAt = startedAgo(1 * time.Hour)
	assert.Equal(t, 1, g.CurrentDay())

	g.StartedAt = startedAgo(49 * time.Hour)
	assert.Equal(t, 3, g.CurrentDay())

	// Capped at duration even long after the end
	g.StartedAt = startedAgo(30 * 24 * time.Hour)
	assert.Equal(t, 3, g.CurrentDay())
}

func TestIsExpired(t *testing.T) {
	g := SharedLearningGoal{}
	assert.False(t, g.IsExpired())

	past := time.Now().Add(-time.Hour)
	g.EndDate = &past
	assert.True(t, g.IsExpired())

	future := time.Now().Add(time.Hour)
	g.EndDate = &future
	assert.False(t, g.IsExpired())
}

func TestDayProgressFor(t *testing.T) {
	progress := []DayProgress{{Day: 1}, {Day: 2}, {Day: 3}}

	p := DayProgressFor(progress, 2)
	assert.NotNil(t, p)
	assert.Equal(t, 2, p.Day)

	// Returned pointer aliases the slice element
	p.CreatorCompletion.Completed = true
	assert.True(t, progress[1].CreatorCompletion.Completed)

	assert.Nil(t, DayProgressFor(progress, 9))
	assert.Nil(t, DayProgressFor(nil, 1))
}
