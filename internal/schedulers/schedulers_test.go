package schedulers

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dantexito/Taller3-OS/internal/core"
)

func scenario() core.ProcessSet {
	return core.ProcessSet{
		core.NewProcess(1, 0, 5),
		core.NewProcess(2, 1, 3),
		core.NewProcess(3, 2, 8),
	}
}

func times(t *testing.T, set core.ProcessSet) (starts, finishes []int) {
	t.Helper()
	for _, p := range set {
		start, ok := p.Start.Value()
		require.True(t, ok, "process %d has no start", p.ID)
		finish, ok := p.Finish.Value()
		require.True(t, ok, "process %d has no finish", p.ID)
		starts = append(starts, start)
		finishes = append(finishes, finish)
	}
	return
}

func randomSet(r *rand.Rand, n int) core.ProcessSet {
	set := make(core.ProcessSet, n)
	for i := range set {
		set[i] = core.NewProcess(i+1, r.Intn(20), r.Intn(9)+1)
	}
	return set
}

func TestFirstComeFirstServe(t *testing.T) {
	tests := []struct {
		name         string
		set          core.ProcessSet
		wantStarts   []int
		wantFinishes []int
		wantIdle     int
	}{
		{
			name:         "arrival sorted",
			set:          scenario(),
			wantStarts:   []int{0, 5, 8},
			wantFinishes: []int{5, 8, 16},
		},
		{
			name:         "cpu idles until arrival",
			set:          core.ProcessSet{core.NewProcess(1, 0, 2), core.NewProcess(2, 5, 3)},
			wantStarts:   []int{0, 5},
			wantFinishes: []int{2, 8},
			wantIdle:     3,
		},
		{
			name:         "input order is kept",
			set:          core.ProcessSet{core.NewProcess(1, 4, 2), core.NewProcess(2, 0, 3)},
			wantStarts:   []int{4, 6},
			wantFinishes: []int{6, 9},
			wantIdle:     4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := FirstComeFirstServe(tt.set, core.Limits{MaxProcesses: 100})
			require.NoError(t, err)

			starts, finishes := times(t, schedule.Processes)
			assert.Equal(t, tt.wantStarts, starts)
			assert.Equal(t, tt.wantFinishes, finishes)
			assert.Equal(t, tt.wantIdle, schedule.Cpu.IdleTime)
			assert.Equal(t, tt.set.TotalBurst(), schedule.Executed())
		})
	}
}

func TestFirstComeFirstServe_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		set := randomSet(r, r.Intn(10)+1)

		schedule, err := FirstComeFirstServe(set, core.Limits{})
		require.NoError(t, err)

		_, finishes := times(t, schedule.Processes)
		for j, p := range schedule.Processes {
			start, _ := p.Start.Value()
			assert.Equal(t, start+p.Burst, finishes[j])
			assert.GreaterOrEqual(t, start, p.Arrival)
		}

		again, err := FirstComeFirstServe(set, core.Limits{})
		require.NoError(t, err)
		assert.Equal(t, schedule, again, "fcfs must be idempotent")
	}
}

func TestFirstComeFirstServe_NonDecreasingWhenSorted(t *testing.T) {
	set := core.ProcessSet{
		core.NewProcess(4, 0, 3),
		core.NewProcess(9, 0, 1),
		core.NewProcess(2, 6, 2),
		core.NewProcess(5, 20, 4),
	}
	schedule, err := FirstComeFirstServe(set, core.Limits{})
	require.NoError(t, err)

	_, finishes := times(t, schedule.Processes)
	assert.IsNonDecreasing(t, finishes)
}

func TestFirstComeFirstServe_DoesNotMutateInput(t *testing.T) {
	set := scenario()
	_, err := FirstComeFirstServe(set, core.Limits{})
	require.NoError(t, err)
	assert.Equal(t, scenario(), set)
}

func TestRoundRobin(t *testing.T) {
	tests := []struct {
		name         string
		set          core.ProcessSet
		quantum      int
		wantStarts   []int
		wantFinishes []int
		wantIdle     int
	}{
		{
			name:         "quantum 1 interleaves",
			set:          scenario(),
			quantum:      1,
			wantStarts:   []int{0, 1, 3},
			wantFinishes: []int{11, 8, 16},
		},
		{
			name:         "single process",
			set:          core.ProcessSet{core.NewProcess(1, 0, 1)},
			quantum:      1,
			wantStarts:   []int{0},
			wantFinishes: []int{1},
		},
		{
			name:         "idle gap",
			set:          core.ProcessSet{core.NewProcess(1, 0, 2), core.NewProcess(2, 5, 3)},
			quantum:      2,
			wantStarts:   []int{0, 5},
			wantFinishes: []int{2, 8},
			wantIdle:     3,
		},
		{
			name:         "unsorted input",
			set:          core.ProcessSet{core.NewProcess(1, 4, 2), core.NewProcess(2, 0, 3)},
			quantum:      2,
			wantStarts:   []int{4, 0},
			wantFinishes: []int{6, 3},
			wantIdle:     1,
		},
		{
			name:         "equal arrivals keep input order",
			set:          core.ProcessSet{core.NewProcess(7, 0, 2), core.NewProcess(3, 0, 2)},
			quantum:      1,
			wantStarts:   []int{0, 1},
			wantFinishes: []int{3, 4},
		},
		{
			name:         "arrival during slice goes before preempted process",
			set:          core.ProcessSet{core.NewProcess(1, 0, 3), core.NewProcess(2, 1, 1)},
			quantum:      2,
			wantStarts:   []int{0, 2},
			wantFinishes: []int{4, 3},
		},
		{
			name:         "arrival at slice end goes before preempted process",
			set:          core.ProcessSet{core.NewProcess(1, 0, 3), core.NewProcess(2, 2, 1)},
			quantum:      2,
			wantStarts:   []int{0, 2},
			wantFinishes: []int{4, 3},
		},
		{
			name:         "large quantum behaves like fcfs",
			set:          scenario(),
			quantum:      100,
			wantStarts:   []int{0, 5, 8},
			wantFinishes: []int{5, 8, 16},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := RoundRobin(tt.set, tt.quantum, core.Limits{MaxProcesses: 100})
			require.NoError(t, err)

			starts, finishes := times(t, schedule.Processes)
			assert.Equal(t, tt.wantStarts, starts)
			assert.Equal(t, tt.wantFinishes, finishes)
			assert.Equal(t, tt.wantIdle, schedule.Cpu.IdleTime)
		})
	}
}

func TestRoundRobin_Gantt(t *testing.T) {
	schedule, err := RoundRobin(core.ProcessSet{core.NewProcess(1, 0, 3), core.NewProcess(2, 1, 1)}, 2, core.Limits{})
	require.NoError(t, err)

	assert.Equal(t, []core.TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 3},
		{PID: 1, Start: 3, Stop: 4},
	}, schedule.Gantt)
}

func TestRoundRobin_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		set := randomSet(r, r.Intn(10)+1)
		for _, quantum := range []int{1, 2, 3, 5} {
			schedule, err := RoundRobin(set, quantum, core.Limits{})
			require.NoError(t, err)

			assert.Equal(t, set.TotalBurst(), schedule.Executed(), "quantum %d", quantum)
			for _, p := range schedule.Processes {
				start, _ := p.Start.Value()
				finish, _ := p.Finish.Value()
				assert.GreaterOrEqual(t, finish-start, p.Burst)
				assert.GreaterOrEqual(t, finish, p.Arrival+p.Burst)
				assert.Equal(t, 0, p.Remaining)
			}
			for _, slice := range schedule.Gantt {
				assert.LessOrEqual(t, slice.Len(), quantum)
				for _, p := range schedule.Processes {
					if p.ID == slice.PID {
						assert.GreaterOrEqual(t, slice.Start, p.Arrival, "process %d ran before arrival", p.ID)
					}
				}
			}
		}
	}
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	for _, quantum := range []int{0, -3} {
		_, err := RoundRobin(scenario(), quantum, core.Limits{})
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	}
}

func TestEngines_RejectInvalidSets(t *testing.T) {
	tests := []struct {
		name    string
		set     core.ProcessSet
		max     int
		wantErr error
	}{
		{name: "empty", set: core.ProcessSet{}, wantErr: core.ErrInvalidConfiguration},
		{name: "bad burst", set: core.ProcessSet{core.NewProcess(1, 0, 0)}, wantErr: core.ErrMalformedInput},
		{name: "duplicate", set: core.ProcessSet{core.NewProcess(1, 0, 1), core.NewProcess(1, 0, 1)}, wantErr: core.ErrMalformedInput},
		{name: "capacity", set: scenario(), max: 2, wantErr: core.ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FirstComeFirstServe(tt.set, core.Limits{MaxProcesses: tt.max})
			assert.ErrorIs(t, err, tt.wantErr)
			_, err = RoundRobin(tt.set, 2, core.Limits{MaxProcesses: tt.max})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngines_ShareInput(t *testing.T) {
	set := scenario()

	fcfs, err := FirstComeFirstServe(set, core.Limits{})
	require.NoError(t, err)
	rr, err := RoundRobin(set, 1, core.Limits{})
	require.NoError(t, err)

	_, fcfsFinishes := times(t, fcfs.Processes)
	_, rrFinishes := times(t, rr.Processes)
	assert.Equal(t, []int{5, 8, 16}, fcfsFinishes)
	assert.Equal(t, []int{11, 8, 16}, rrFinishes)
	assert.Equal(t, scenario(), set)
}

func TestEngines_RejectTimeOverflow(t *testing.T) {
	set := core.ProcessSet{core.NewProcess(1, math.MaxInt-2, 5)}

	schedule, err := FirstComeFirstServe(set, core.Limits{})
	assert.ErrorIs(t, err, core.ErrMalformedInput)
	assert.Empty(t, schedule.Processes)

	schedule, err = RoundRobin(set, 2, core.Limits{})
	assert.ErrorIs(t, err, core.ErrMalformedInput)
	assert.Empty(t, schedule.Processes)
}

func TestEngines_RejectPastTimeHorizon(t *testing.T) {
	set := core.ProcessSet{core.NewProcess(1, 0, 5), core.NewProcess(2, 1_000_000_000_000, 1)}
	limits := core.Limits{MaxProcesses: 100, MaxTime: 1_000_000}

	_, err := FirstComeFirstServe(set, limits)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	_, err = RoundRobin(set, 2, limits)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestRoundRobin_SkipsLongIdleGaps(t *testing.T) {
	set := core.ProcessSet{
		core.NewProcess(1, 0, 2),
		core.NewProcess(2, 5, 3),
		core.NewProcess(3, 2_000_000_000, 1),
	}

	done := make(chan struct{})
	var schedule Schedule
	var err error
	go func() {
		defer close(done)
		schedule, err = RoundRobin(set, 2, core.Limits{})
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("round robin did not finish within a second")
	}
	require.NoError(t, err)

	starts, finishes := times(t, schedule.Processes)
	assert.Equal(t, []int{0, 5, 2_000_000_000}, starts)
	assert.Equal(t, []int{2, 8, 2_000_000_001}, finishes)
	assert.Equal(t, 3+(2_000_000_000-8), schedule.Cpu.IdleTime)
	assert.Equal(t, 2_000_000_001, schedule.Cpu.TotalTime)
}
