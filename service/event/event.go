package event

import (
	"time"

	"github.com/viant/maitre/model"
)

// Type identifies a protocol lifecycle event.
type Type string

const (
	// TypeRequestPosted - a group placed a request into the shared slot.
	TypeRequestPosted Type = "request.posted"

	// TypeRequestAccepted - the receptionist consumed a request and reset
	// the slot to the empty sentinel.
	TypeRequestAccepted Type = "request.accepted"

	// TypeGroupSeated - a group was assigned a table.
	TypeGroupSeated Type = "group.seated"

	// TypeGroupQueued - no table was free; the group entered the waiting room.
	TypeGroupQueued Type = "group.queued"

	// TypeGroupDone - the group paid and left.
	TypeGroupDone Type = "group.done"

	// TypeTableFreed - payment released a table for reuse.
	TypeTableFreed Type = "table.freed"

	// TypeTableCleared - the steward finished resetting a freed table.
	TypeTableCleared Type = "table.cleared"
)

// Event captures one observable protocol transition. Group and Table use
// model sentinels when not applicable to the event type.
type Event struct {
	ID        string            `json:"id"`
	Type      Type              `json:"type"`
	Group     int               `json:"group"`
	Table     int               `json:"table"`
	Kind      model.RequestKind `json:"kind,omitempty"`
	Waiting   int               `json:"waiting"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewEvent creates an event with sentinel group/table fields.
func NewEvent(eventType Type) *Event {
	return &Event{
		Type:  eventType,
		Group: model.NoGroup,
		Table: model.NoTable,
		Kind:  model.KindNone,
	}
}
