// Package journal persists arena snapshots - the concrete form of the
// protocol's "record current state" collaborator. A record is written
// after every state-affecting transition: status changes, request slot
// changes and table assignment changes.
package journal

import (
	"context"

	"github.com/viant/maitre/model"
)

// Service records arena snapshots.
type Service interface {
	// Record persists a snapshot. The snapshot is owned by the journal
	// once passed in; callers never mutate it afterwards.
	Record(ctx context.Context, snapshot *model.Snapshot) error
}
