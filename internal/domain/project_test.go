package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectIsOverdue(t *testing.T) {
	past := testNow.AddDate(0, 0, -1)
	future := testNow.AddDate(0, 0, 1)

	cases := []struct {
		name    string
		end     *time.Time
		status  ProjectStatus
		overdue bool
	}{
		{"open ended", nil, ProjectActive, false},
		{"future end", &future, ProjectActive, false},
		{"past end, active", &past, ProjectActive, true},
		{"past end, completed", &past, ProjectCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Project{EndDate: tc.end, Status: tc.status}
			assert.Equal(t, tc.overdue, p.IsOverdue(testNow))
		})
	}
}

func TestProjectDuration(t *testing.T) {
	end := testNow.AddDate(0, 0, 14)
	p := &Project{StartDate: testNow, EndDate: &end}
	assert.Equal(t, 14, p.Duration())

	open := &Project{StartDate: testNow}
	assert.Equal(t, 0, open.Duration())
}

func TestCompletionPercentage(t *testing.T) {
	p := &Project{Progress: 0.62}
	assert.Equal(t, 62, p.CompletionPercentage())

	empty := &Project{}
	assert.Equal(t, 0, empty.CompletionPercentage())
}

func TestHasMember(t *testing.T) {
	p := &Project{TeamMemberIDs: []string{"m1", "m2"}}
	assert.True(t, p.HasMember("m1"))
	assert.False(t, p.HasMember("m3"))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(testNow, testNow.AddDate(0, 0, 10)))
	assert.Equal(t, -3, DaysBetween(testNow, testNow.AddDate(0, 0, -3)))
	assert.Equal(t, 0, DaysBetween(testNow, testNow.Add(5*time.Hour)))
}
