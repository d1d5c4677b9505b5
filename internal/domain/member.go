package domain

import (
	"strings"
	"time"
)

// WellnessStatus labels a wellness score bucket.
type WellnessStatus string

const (
	WellnessExcellent      WellnessStatus = "Excellent"
	WellnessGood           WellnessStatus = "Good"
	WellnessFair           WellnessStatus = "Fair"
	WellnessNeedsAttention WellnessStatus = "Needs Attention"
)

// AllWellnessStatuses lists the buckets from best to worst.
func AllWellnessStatuses() []WellnessStatus {
	return []WellnessStatus{WellnessExcellent, WellnessGood, WellnessFair, WellnessNeedsAttention}
}

// WellnessData is a daily activity snapshot for one member.
type WellnessData struct {
	StepsToday          int       `json:"steps_today"`
	SleepHoursLastNight float64   `json:"sleep_hours_last_night"`
	LastUpdated         time.Time `json:"last_updated"`
}

// Score derives a [0,1] wellness value: half from steps against a 10k goal,
// half from sleep against an 8h goal, each capped at its goal.
func (w WellnessData) Score() float64 {
	steps := float64(w.StepsToday) / 10000.0
	if steps > 1 {
		steps = 1
	}
	sleep := w.SleepHoursLastNight / 8.0
	if sleep > 1 {
		sleep = 1
	}
	return steps*0.5 + sleep*0.5
}

// Status buckets the score at 0.8/0.6/0.4 thresholds.
func (w WellnessData) Status() WellnessStatus {
	score := w.Score()
	switch {
	case score >= 0.8:
		return WellnessExcellent
	case score >= 0.6:
		return WellnessGood
	case score >= 0.4:
		return WellnessFair
	default:
		return WellnessNeedsAttention
	}
}

type TeamMember struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        MemberRole    `json:"role"`
	AvatarColor string        `json:"avatar_color"`
	JoinDate    time.Time     `json:"join_date"`
	Wellness    *WellnessData `json:"wellness,omitempty"`
	IsActive    bool          `json:"is_active"`
}

// Initials returns the uppercased first letters of up to two name words.
func (m *TeamMember) Initials() string {
	var b strings.Builder
	for i, word := range strings.Fields(m.Name) {
		if i == 2 {
			break
		}
		b.WriteString(string([]rune(word)[0]))
	}
	return strings.ToUpper(b.String())
}
