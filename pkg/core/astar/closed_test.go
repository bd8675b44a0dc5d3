package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwind_StartOnly(t *testing.T) {
	closed := NewSliceClosedList[uint32, int](4)
	closed.Set(2, Start[uint32](0))

	assert.Equal(t, []uint32{2}, Unwind[uint32, int](closed, 2))
}

func TestUnwind_Chain(t *testing.T) {
	closed := NewSliceClosedList[uint32, int](5)
	closed.Set(0, Start[uint32](0))
	closed.Set(3, Reached[uint32](0, 1))
	closed.Set(1, Reached[uint32](3, 2))
	closed.Set(4, Reached[uint32](1, 3))

	assert.Equal(t, []uint32{0, 3, 1, 4}, Unwind[uint32, int](closed, 4))
}

func TestUnwind_StopsAtUnvisited(t *testing.T) {
	closed := NewMapClosedList[string, int]()
	closed.Set("b", Reached("a", 1))

	assert.Equal(t, []string{"a", "b"}, Unwind[string, int](closed, "b"))
}

func TestSliceClosedList_DefaultsAndReset(t *testing.T) {
	closed := NewSliceClosedList[uint16, float64](3)
	require.Equal(t, 3, closed.Len())
	for i := uint16(0); i < 3; i++ {
		assert.Equal(t, Unvisited, closed.Get(i).Kind)
	}

	closed.Set(1, Reached[uint16](0, 2.5))
	assert.Equal(t, PathFrom, closed.Get(1).Kind)
	assert.Equal(t, uint16(0), closed.Get(1).From)

	closed.Reset()
	assert.Equal(t, Unvisited, closed.Get(1).Kind)
}

func TestSliceClosedList_OutOfRangePanics(t *testing.T) {
	closed := NewSliceClosedList[uint32, int](2)
	assert.Panics(t, func() { closed.Get(2) })
	assert.Panics(t, func() { closed.Set(5, Start[uint32](0)) })
}

func TestStateKind_String(t *testing.T) {
	tests := []struct {
		kind StateKind
		want string
	}{
		{Unvisited, "unvisited"},
		{StartingPoint, "starting-point"},
		{PathFrom, "path-from"},
		{StateKind(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
