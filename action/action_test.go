package action_test

import (
	"testing"

	"deedles.dev/xgesture/action"
	"github.com/stretchr/testify/require"
)

func TestPhaseString(t *testing.T) {
	require.Equal(t, "action-start", action.PhaseStart.String())
	require.Equal(t, "action-move", action.PhaseMove.String())
	require.Equal(t, "action-end", action.PhaseEnd.String())
	require.Equal(t, "Phase(7)", action.Phase(7).String())
}

func TestBusOrder(t *testing.T) {
	var bus action.Bus[*[]string]
	bus.On(action.PhaseMove, func(log *[]string) { *log = append(*log, "first") })
	bus.On(action.PhaseMove, func(log *[]string) { *log = append(*log, "second") })
	bus.On(action.PhaseStart, func(log *[]string) { *log = append(*log, "start") })

	var log []string
	bus.Fire(action.PhaseMove, &log)
	require.Equal(t, []string{"first", "second"}, log)

	bus.Fire(action.PhaseEnd, &log)
	require.Len(t, log, 2)
}

func TestBusRemove(t *testing.T) {
	var bus action.Bus[int]
	var got []int
	h1 := bus.On(action.PhaseStart, func(v int) { got = append(got, v) })
	h2 := bus.On(action.PhaseStart, func(v int) { got = append(got, -v) })
	require.Equal(t, 2, bus.Len(action.PhaseStart))

	h1.Remove()
	h1.Remove()
	require.Equal(t, 1, bus.Len(action.PhaseStart))

	bus.Fire(action.PhaseStart, 3)
	require.Equal(t, []int{-3}, got)

	action.Handles{h2}.Remove()
	require.Zero(t, bus.Len(action.PhaseStart))

	var zero action.Handle
	zero.Remove()
}

func TestBusRemoveDuringFire(t *testing.T) {
	var bus action.Bus[struct{}]
	calls := 0
	var h action.Handle
	h = bus.On(action.PhaseEnd, func(struct{}) {
		calls++
		h.Remove()
	})
	bus.On(action.PhaseEnd, func(struct{}) { calls++ })

	bus.Fire(action.PhaseEnd, struct{}{})
	require.Equal(t, 2, calls)
	bus.Fire(action.PhaseEnd, struct{}{})
	require.Equal(t, 3, calls)
}
