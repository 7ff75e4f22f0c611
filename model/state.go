package model

// NoTable marks a group without a table assignment.
const NoTable = -1

// GroupState is the lifecycle state of a group as tracked by the
// receptionist. Transitions are driven exclusively by the receptionist;
// Done is terminal.
type GroupState int

const (
	// GroupToArrive is the initial state before any request was posted.
	GroupToArrive GroupState = iota

	// GroupWaiting means the group requested a table while all were occupied.
	GroupWaiting

	// GroupSeated means the group holds a table.
	GroupSeated

	// GroupDone means the group paid and left.
	GroupDone
)

// String returns a human-readable state name.
func (s GroupState) String() string {
	switch s {
	case GroupToArrive:
		return "toArrive"
	case GroupWaiting:
		return "waiting"
	case GroupSeated:
		return "seated"
	case GroupDone:
		return "done"
	}
	return "unknown"
}

// Status is the receptionist's published state, mutated only under the
// mutual-exclusion gate and journaled on every change.
type Status int

const (
	// StatusWaitingForRequest - the receptionist is idle, waiting for a post.
	StatusWaitingForRequest Status = iota

	// StatusAssigningTable - the receptionist is deciding table or waiting room.
	StatusAssigningTable

	// StatusReceivingPayment - the receptionist is settling a bill.
	StatusReceivingPayment
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusWaitingForRequest:
		return "waitingForRequest"
	case StatusAssigningTable:
		return "assigningTable"
	case StatusReceivingPayment:
		return "receivingPayment"
	}
	return "unknown"
}
