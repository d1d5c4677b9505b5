package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWellnessScore_Bounds(t *testing.T) {
	perfect := WellnessData{StepsToday: 10000, SleepHoursLastNight: 8.0}
	assert.Equal(t, 1.0, perfect.Score())

	zero := WellnessData{}
	assert.Equal(t, 0.0, zero.Score())

	// Exceeding the goals does not push the score past 1.
	over := WellnessData{StepsToday: 25000, SleepHoursLastNight: 11}
	assert.Equal(t, 1.0, over.Score())
}

func TestWellnessScore_Partial(t *testing.T) {
	w := WellnessData{StepsToday: 5000, SleepHoursLastNight: 4.0}
	assert.InDelta(t, 0.5, w.Score(), 1e-9)
}

func TestWellnessStatus_Buckets(t *testing.T) {
	cases := []struct {
		steps  int
		sleep  float64
		status WellnessStatus
	}{
		{10000, 8.0, WellnessExcellent},     // 1.0
		{8000, 6.4, WellnessExcellent},      // 0.8, threshold is inclusive
		{6000, 4.8, WellnessGood},           // 0.6
		{4000, 3.2, WellnessFair},           // 0.4
		{2000, 1.6, WellnessNeedsAttention}, // 0.2
	}
	for _, tc := range cases {
		w := WellnessData{StepsToday: tc.steps, SleepHoursLastNight: tc.sleep}
		assert.Equal(t, tc.status, w.Status(), "steps=%d sleep=%.1f score=%.2f", tc.steps, tc.sleep, w.Score())
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"Grace Brewster Murray Hopper", "GB"},
		{"cher", "C"},
	}
	for _, tc := range cases {
		m := &TeamMember{Name: tc.name}
		assert.Equal(t, tc.want, m.Initials(), "name=%q", tc.name)
	}
}
