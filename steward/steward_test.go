package steward

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/maitre/gate"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestSteward_ClearsVacatedTables(t *testing.T) {
	gates, err := gate.NewSet(2, 2)
	require.NoError(t, err)
	steward, err := New(gates)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = steward.Run(ctx)
		close(done)
	}()

	require.NoError(t, gates.TableVacated[1].Release())
	require.NoError(t, gates.TableVacated[0].Release())

	assert.Eventually(t, func() bool {
		return len(steward.Cleared()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []int{0, 1}, steward.Cleared())

	// the gates were consumed - tables are ready for reuse
	assert.Equal(t, 0, gates.TableVacated[0].Count())
	assert.Equal(t, 0, gates.TableVacated[1].Count())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("steward did not stop on cancellation")
	}
}
