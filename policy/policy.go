package policy

import "github.com/viant/maitre/model"

// None is returned when no table is free or no group is waiting.
const None = -1

// View is the read-only slice of the arena the policy functions need.
// Callers must hold the mutual-exclusion gate while a View is consulted.
type View interface {
	// Groups returns the configured group population size.
	Groups() int

	// Tables returns the configured table count.
	Tables() int

	// AssignmentOf returns the table held by a group, or model.NoTable.
	AssignmentOf(group int) int

	// GroupState returns the lifecycle state of a group.
	GroupState(group int) model.GroupState
}

// FirstFreeTable scans table indices in increasing order and returns the
// first index not present among any group's current assignment, or None
// when every table is occupied.
func FirstFreeTable(view View) int {
	for table := 0; table < view.Tables(); table++ {
		inUse := false
		for group := 0; group < view.Groups(); group++ {
			if view.AssignmentOf(group) == table {
				inUse = true
				break
			}
		}
		if !inUse {
			return table
		}
	}
	return None
}

// FirstWaitingGroup scans group indices in increasing order and returns
// the first group in the waiting state, or None when no group is waiting.
func FirstWaitingGroup(view View) int {
	for group := 0; group < view.Groups(); group++ {
		if view.GroupState(group) == model.GroupWaiting {
			return group
		}
	}
	return None
}
