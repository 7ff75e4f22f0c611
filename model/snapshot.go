package model

import "time"

// Snapshot is a serialisable copy of the shared arena taken after a
// state-affecting transition. Snapshots are immutable once taken - the
// journal owns them and actors never retain a reference.
type Snapshot struct {
	ID          string    `json:"id"`
	Sequence    int       `json:"sequence"`
	TakenAt     time.Time `json:"takenAt"`
	Status      string    `json:"status"`
	Request     Request   `json:"request"`
	Assignments []int     `json:"assignments"`
	GroupStates []string  `json:"groupStates"`
	Waiting     int       `json:"waiting"`
}
