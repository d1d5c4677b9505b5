package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("URGENT")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	p, err = ParsePriority("low")
	require.NoError(t, err)
	assert.Equal(t, PriorityLow, p)

	_, err = ParsePriority("maximum")
	require.Error(t, err)
}

func TestParseTaskStatus(t *testing.T) {
	s, err := ParseTaskStatus("In Progress")
	require.NoError(t, err)
	assert.Equal(t, TaskInProgress, s)

	s, err = ParseTaskStatus("inprogress")
	require.NoError(t, err)
	assert.Equal(t, TaskInProgress, s)

	s, err = ParseTaskStatus("todo")
	require.NoError(t, err)
	assert.Equal(t, TaskTodo, s)

	_, err = ParseTaskStatus("paused")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("intern")
	require.Error(t, err)
}
