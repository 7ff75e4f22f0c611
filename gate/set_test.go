package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	set, err := NewSet(3, 2)
	assert.NoError(t, err)

	assert.Equal(t, 1, set.Mutex.Count())
	assert.Equal(t, 0, set.RequestPending.Count())
	assert.Equal(t, 1, set.SlotAvailable.Count())
	assert.Len(t, set.TableReady, 3)
	assert.Len(t, set.TableVacated, 2)
	for _, g := range set.TableReady {
		assert.Equal(t, 0, g.Count())
	}
	for _, g := range set.TableVacated {
		assert.Equal(t, 0, g.Count())
	}
}

func TestNewSet_WithSlots(t *testing.T) {
	set, err := NewSet(2, 1, WithSlots(2))
	assert.NoError(t, err)
	assert.Equal(t, 2, set.SlotAvailable.Count())
}

// A vacated gate holds one signal per group before saturating, so a slow
// consumer never turns a legal payment into a release error.
func TestNewSet_VacatedHoldsOneSignalPerGroup(t *testing.T) {
	set, err := NewSet(3, 1)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.NoError(t, set.TableVacated[0].Release())
	}
	assert.Error(t, set.TableVacated[0].Release())
}

func TestNewSet_Validation(t *testing.T) {
	_, err := NewSet(0, 1)
	assert.Error(t, err)
	_, err = NewSet(1, 0)
	assert.Error(t, err)
	_, err = NewSet(1, 1, WithSlots(-1))
	assert.Error(t, err)
}
