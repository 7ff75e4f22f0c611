package receptionist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/group"
	"github.com/viant/maitre/model"
	"github.com/viant/maitre/service/journal/memory"
)

type fixture struct {
	arena   *arena.Arena
	gates   *gate.Set
	journal *memory.Service
	front   *Service
	groups  []*group.Actor
}

func newFixture(t *testing.T, groups, tables int) *fixture {
	shared := arena.New(groups, tables)
	gates, err := gate.NewSet(groups, tables)
	require.NoError(t, err)
	journal := memory.New()

	front, err := New(
		WithArena(shared),
		WithGates(gates),
		WithJournal(journal))
	require.NoError(t, err)

	actors := make([]*group.Actor, groups)
	for id := 0; id < groups; id++ {
		actors[id], err = group.New(id,
			group.WithArena(shared),
			group.WithGates(gates),
			group.WithJournal(journal))
		require.NoError(t, err)
	}
	return &fixture{arena: shared, gates: gates, journal: journal, front: front, groups: actors}
}

// serve consumes and dispatches exactly one request.
func (f *fixture) serve(t *testing.T, ctx context.Context) model.Request {
	request, err := f.front.WaitForGroup(ctx)
	require.NoError(t, err)
	switch request.Kind {
	case model.TableRequest:
		require.NoError(t, f.front.ProvideTableOrWaitingRoom(ctx, request.Group))
	case model.BillRequest:
		require.NoError(t, f.front.ReceivePayment(ctx, request.Group))
	}
	return request
}

func TestNew_Validation(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
	_, err = New(WithArena(arena.New(1, 1)))
	assert.Error(t, err)
}

// Scenario: two groups, one table. The first requester is seated, the
// second queues; payment frees the table and the queued group is seated
// immediately.
func TestService_AssignThenQueueThenReassign(t *testing.T) {
	f := newFixture(t, 2, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seated := make(chan int, 1)
	go func() {
		table, err := f.groups[0].RequestTable(ctx)
		assert.NoError(t, err)
		seated <- table
	}()

	request := f.serve(t, ctx)
	assert.Equal(t, model.TableRequest, request.Kind)
	assert.Equal(t, 0, request.Group)

	select {
	case table := <-seated:
		assert.Equal(t, 0, table)
	case <-ctx.Done():
		t.Fatal("group 0 was never seated")
	}
	assert.Equal(t, model.GroupSeated, f.arena.GroupState(0))

	// group 1 requests while the only table is held
	queued := make(chan int, 1)
	go func() {
		table, err := f.groups[1].RequestTable(ctx)
		assert.NoError(t, err)
		queued <- table
	}()
	f.serve(t, ctx)
	assert.Equal(t, model.GroupWaiting, f.arena.GroupState(1))
	assert.Equal(t, 1, f.arena.Waiting())

	// group 0 pays; the freed table goes straight to group 1
	require.NoError(t, f.groups[0].RequestBill(ctx))
	f.serve(t, ctx)

	select {
	case table := <-queued:
		assert.Equal(t, 0, table)
	case <-ctx.Done():
		t.Fatal("waiting group was never reassigned the freed table")
	}
	assert.Equal(t, model.GroupDone, f.arena.GroupState(0))
	assert.Equal(t, model.GroupSeated, f.arena.GroupState(1))
	assert.Equal(t, 0, f.arena.Waiting())
	assert.Equal(t, model.NoTable, f.arena.AssignmentOf(0))
	assert.Equal(t, 0, f.arena.AssignmentOf(1))

	// payment signalled the table's vacated gate exactly once
	assert.Equal(t, 1, f.gates.TableVacated[0].Count())
}

// Scenario: a single group with two tables gets the lowest index.
func TestService_FirstFreeTableByScanOrder(t *testing.T) {
	f := newFixture(t, 1, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seated := make(chan int, 1)
	go func() {
		table, err := f.groups[0].RequestTable(ctx)
		assert.NoError(t, err)
		seated <- table
	}()
	f.serve(t, ctx)

	select {
	case table := <-seated:
		assert.Equal(t, 0, table)
	case <-ctx.Done():
		t.Fatal("group was never seated")
	}
}

// Scenario: two groups post concurrently with one table - exactly one is
// seated and one waits, whichever wins the posting race.
func TestService_ConcurrentRequestsOneTable(t *testing.T) {
	f := newFixture(t, 2, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seated := make(chan int, 2)
	for id := 0; id < 2; id++ {
		go func(id int) {
			table, err := f.groups[id].RequestTable(ctx)
			if err == nil {
				seated <- table
			}
		}(id)
	}

	f.serve(t, ctx)
	f.serve(t, ctx)

	select {
	case table := <-seated:
		assert.Equal(t, 0, table)
	case <-ctx.Done():
		t.Fatal("no group was seated")
	}

	states := []model.GroupState{f.arena.GroupState(0), f.arena.GroupState(1)}
	assert.Contains(t, states, model.GroupSeated)
	assert.Contains(t, states, model.GroupWaiting)
	assert.Equal(t, 1, f.arena.Waiting())
}

// After WaitForGroup consumes a request the slot reads as the empty
// sentinel until the next post.
func TestService_SlotResetAfterConsume(t *testing.T) {
	f := newFixture(t, 1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		_, _ = f.groups[0].RequestTable(ctx)
	}()

	request, err := f.front.WaitForGroup(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TableRequest, request.Kind)
	assert.True(t, f.arena.Request().IsEmpty())

	// unblock the group before the context expires
	require.NoError(t, f.front.ProvideTableOrWaitingRoom(ctx, request.Group))
}

// Every journal record must satisfy the table-uniqueness and
// waiting-count invariants.
func TestService_JournalInvariants(t *testing.T) {
	f := newFixture(t, 3, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for id := 0; id < 3; id++ {
		go func(id int) {
			if _, err := f.groups[id].RequestTable(ctx); err != nil {
				return
			}
			_ = f.groups[id].RequestBill(ctx)
		}(id)
	}
	for served := 0; served < 6; served++ {
		f.serve(t, ctx)
	}

	for _, snapshot := range f.journal.Snapshots() {
		held := map[int]bool{}
		waiting := 0
		for g, table := range snapshot.Assignments {
			if table != model.NoTable {
				assert.False(t, held[table], "snapshot %v: table %v held twice", snapshot.Sequence, table)
				assert.GreaterOrEqual(t, table, 0)
				assert.Less(t, table, 1)
				held[table] = true
			}
			if snapshot.GroupStates[g] == "waiting" {
				waiting++
			}
		}
		assert.Equal(t, waiting, snapshot.Waiting, "snapshot %v: waiting count drifted", snapshot.Sequence)
	}

	// all groups terminated
	for id := 0; id < 3; id++ {
		assert.Equal(t, model.GroupDone, f.arena.GroupState(id))
		assert.Equal(t, model.NoTable, f.arena.AssignmentOf(id))
	}
	assert.Equal(t, 0, f.arena.Waiting())
}

// Vacated signals accumulate when nobody consumes them: with one table
// and every group paying in turn, the second payment must succeed even
// though the first signal is still outstanding.
func TestService_RepeatedPaymentsWithoutSteward(t *testing.T) {
	f := newFixture(t, 2, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seated := make(chan int, 1)
	go func() {
		table, err := f.groups[0].RequestTable(ctx)
		assert.NoError(t, err)
		seated <- table
	}()
	f.serve(t, ctx)
	select {
	case <-seated:
	case <-ctx.Done():
		t.Fatal("group 0 was never seated")
	}

	reseated := make(chan int, 1)
	go func() {
		table, err := f.groups[1].RequestTable(ctx)
		assert.NoError(t, err)
		reseated <- table
	}()
	f.serve(t, ctx)
	assert.Equal(t, model.GroupWaiting, f.arena.GroupState(1))

	// first payment reseats group 1 at the same table
	require.NoError(t, f.groups[0].RequestBill(ctx))
	f.serve(t, ctx)
	select {
	case table := <-reseated:
		assert.Equal(t, 0, table)
	case <-ctx.Done():
		t.Fatal("waiting group was never reassigned the freed table")
	}

	// second payment lands on a gate still holding the first signal
	require.NoError(t, f.groups[1].RequestBill(ctx))
	f.serve(t, ctx)

	assert.Equal(t, model.GroupDone, f.arena.GroupState(0))
	assert.Equal(t, model.GroupDone, f.arena.GroupState(1))
	assert.Equal(t, 2, f.gates.TableVacated[0].Count())
}

func TestService_Run(t *testing.T) {
	f := newFixture(t, 2, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for id := 0; id < 2; id++ {
		go func(id int) {
			if _, err := f.groups[id].RequestTable(ctx); err != nil {
				return
			}
			_ = f.groups[id].RequestBill(ctx)
		}(id)
	}

	// default budget is two requests per group
	require.NoError(t, f.front.Run(ctx, 0))
	assert.Equal(t, model.GroupDone, f.arena.GroupState(0))
	assert.Equal(t, model.GroupDone, f.arena.GroupState(1))
}
