// Package arena holds the single shared mutable record all actors operate
// on. The Arena itself carries no locking: every read-modify-write must
// happen while the caller holds the gate.Set Mutex, and no actor may keep
// a reference into the arena across a blocking wait. Snapshot produces the
// deep copy handed to the journal.
package arena

import (
	"github.com/viant/maitre/internal/clock"
	"github.com/viant/maitre/internal/idgen"
	"github.com/viant/maitre/model"
)

// Arena is the shared state block of the protocol.
type Arena struct {
	tables   int
	assigned []int
	states   []model.GroupState
	request  model.Request
	waiting  int
	status   model.Status
	sequence int
}

// New creates an arena for a static population of groups and tables. All
// groups start unassigned in the to-arrive state with an empty request
// slot.
func New(groups, tables int) *Arena {
	ret := &Arena{
		tables:   tables,
		assigned: make([]int, groups),
		states:   make([]model.GroupState, groups),
		request:  model.EmptyRequest(),
	}
	for g := range ret.assigned {
		ret.assigned[g] = model.NoTable
	}
	return ret
}

// Groups returns the configured group population size.
func (a *Arena) Groups() int { return len(a.assigned) }

// Tables returns the configured table count.
func (a *Arena) Tables() int { return a.tables }

// PostRequest places a request into the one-slot cell. Posting over an
// unconsumed request means the slot-available handshake was bypassed.
func (a *Arena) PostRequest(request model.Request) error {
	if request.Group < 0 || request.Group >= len(a.assigned) {
		return model.NewInvalidGroupError(request.Group, len(a.assigned))
	}
	if !a.request.IsEmpty() {
		return model.NewSlotOccupiedError(a.request)
	}
	a.request = request
	return nil
}

// TakeRequest copies the posted request out and resets the slot to the
// empty sentinel.
func (a *Arena) TakeRequest() model.Request {
	ret := a.request
	a.request = model.EmptyRequest()
	return ret
}

// Request returns the current slot content without consuming it.
func (a *Arena) Request() model.Request { return a.request }

// Assign records that a group holds a table. Assigning an occupied table
// or double-assigning a group is a protocol defect, not a runtime
// condition, and is reported as an error for the caller to treat as fatal.
func (a *Arena) Assign(group, table int) error {
	if group < 0 || group >= len(a.assigned) {
		return model.NewInvalidGroupError(group, len(a.assigned))
	}
	if table < 0 || table >= a.tables {
		return model.NewInvalidTableError(table, a.tables)
	}
	for g, held := range a.assigned {
		if held == table {
			return model.NewTableOccupiedError(table, g)
		}
	}
	a.assigned[group] = table
	return nil
}

// ClearAssignment releases a group's table and returns the freed index,
// or model.NoTable when the group held none.
func (a *Arena) ClearAssignment(group int) int {
	if group < 0 || group >= len(a.assigned) {
		return model.NoTable
	}
	ret := a.assigned[group]
	a.assigned[group] = model.NoTable
	return ret
}

// AssignmentOf returns the table held by a group, or model.NoTable.
func (a *Arena) AssignmentOf(group int) int {
	if group < 0 || group >= len(a.assigned) {
		return model.NoTable
	}
	return a.assigned[group]
}

// SetGroupState updates a group's lifecycle state.
func (a *Arena) SetGroupState(group int, state model.GroupState) {
	if group < 0 || group >= len(a.states) {
		return
	}
	a.states[group] = state
}

// GroupState returns a group's lifecycle state.
func (a *Arena) GroupState(group int) model.GroupState {
	if group < 0 || group >= len(a.states) {
		return model.GroupDone
	}
	return a.states[group]
}

// IncWaiting counts a group entering the waiting room.
func (a *Arena) IncWaiting() { a.waiting++ }

// DecWaiting counts a waiting group being reassigned a table.
func (a *Arena) DecWaiting() { a.waiting-- }

// Waiting returns the number of groups queued for a table.
func (a *Arena) Waiting() int { return a.waiting }

// SetStatus publishes the receptionist status.
func (a *Arena) SetStatus(status model.Status) { a.status = status }

// Status returns the published receptionist status.
func (a *Arena) Status() model.Status { return a.status }

// Snapshot deep-copies the arena into a journal record. Each snapshot
// carries a monotonically increasing sequence within this arena.
func (a *Arena) Snapshot() *model.Snapshot {
	a.sequence++
	ret := &model.Snapshot{
		ID:          idgen.New(),
		Sequence:    a.sequence,
		TakenAt:     clock.Now(),
		Status:      a.status.String(),
		Request:     a.request,
		Assignments: make([]int, len(a.assigned)),
		GroupStates: make([]string, len(a.states)),
		Waiting:     a.waiting,
	}
	copy(ret.Assignments, a.assigned)
	for g, state := range a.states {
		ret.GroupStates[g] = state.String()
	}
	return ret
}
