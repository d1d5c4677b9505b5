package domain

import (
	"fmt"
	"strings"
)

// TaskPriority is an ordered priority scale. The integer values are the
// persisted raw values and define the ordering (low < medium < high < urgent).
type TaskPriority int

const (
	PriorityLow    TaskPriority = 0
	PriorityMedium TaskPriority = 1
	PriorityHigh   TaskPriority = 2
	PriorityUrgent TaskPriority = 3
)

// AllPriorities lists every priority in ascending order.
func AllPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p TaskPriority) Title() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// HeatmapValue maps a priority onto [0,1] for urgency scoring.
func (p TaskPriority) HeatmapValue() float64 {
	switch p {
	case PriorityLow:
		return 0.25
	case PriorityMedium:
		return 0.5
	case PriorityHigh:
		return 0.75
	case PriorityUrgent:
		return 1.0
	default:
		return 0
	}
}

// ParsePriority accepts a priority name, case-insensitively.
func ParsePriority(s string) (TaskPriority, error) {
	for _, p := range AllPriorities() {
		if strings.EqualFold(s, p.Title()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q (low, medium, high, urgent)", s)
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskReview     TaskStatus = "Review"
	TaskCompleted  TaskStatus = "Completed"
)

// AllTaskStatuses lists every task status in workflow order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskCompleted}
}

// ParseTaskStatus accepts a status raw value, case-insensitively, with or
// without the space ("inprogress" and "In Progress" both match).
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range AllTaskStatuses() {
		if strings.EqualFold(s, string(st)) ||
			strings.EqualFold(s, strings.ReplaceAll(string(st), " ", "")) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectArchived  ProjectStatus = "Archived"
)

func AllProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectArchived}
}

type MemberRole string

const (
	RoleOwner  MemberRole = "Owner"
	RoleAdmin  MemberRole = "Admin"
	RoleMember MemberRole = "Member"
	RoleViewer MemberRole = "Viewer"
)

func AllRoles() []MemberRole {
	return []MemberRole{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}

// ParseRole accepts a role raw value, case-insensitively.
func ParseRole(s string) (MemberRole, error) {
	for _, r := range AllRoles() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (owner, admin, member, viewer)", s)
}
