package core

import (
	"fmt"
	"math"
)

// Tick is a point on the simulation time axis that may not have been computed yet.
type Tick struct {
	at  int
	set bool
}

func At(t int) Tick {
	return Tick{at: t, set: true}
}

func (t Tick) IsSet() bool {
	return t.set
}

// Value returns the time and whether it was ever assigned.
func (t Tick) Value() (int, bool) {
	return t.at, t.set
}

func (t Tick) String() string {
	if !t.set {
		return "-"
	}
	return fmt.Sprint(t.at)
}

type Process struct {
	ID        int
	Arrival   int
	Burst     int
	Remaining int
	Start     Tick
	Finish    Tick
}

func NewProcess(id, arrival, burst int) Process {
	return Process{ID: id, Arrival: arrival, Burst: burst, Remaining: burst}
}

// Reset clears everything a scheduling run writes.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.Start = Tick{}
	p.Finish = Tick{}
}

func (p Process) Completed() bool {
	return p.Finish.IsSet()
}

// TimeSlice is one dispatch of a process on the cpu, [Start, Stop).
type TimeSlice struct {
	PID   int
	Start int
	Stop  int
}

func (s TimeSlice) Len() int {
	return s.Stop - s.Start
}

// ProcessSet keeps input order, which is the tie breaker for equal arrivals.
type ProcessSet []Process

// Clone returns an independent copy with every run field reset.
func (s ProcessSet) Clone() ProcessSet {
	out := make(ProcessSet, len(s))
	copy(out, s)
	out.Reset()
	return out
}

func (s ProcessSet) Reset() {
	for i := range s {
		s[i].Reset()
	}
}

// Limits bound what a single run may simulate. Zero disables a bound.
type Limits struct {
	MaxProcesses int
	// MaxTime caps the latest possible finish, max(arrival) + sum(burst).
	MaxTime int
}

// Validate rejects sets no engine can run within limits.
func (s ProcessSet) Validate(limits Limits) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty process set", ErrInvalidConfiguration)
	}
	if limits.MaxProcesses > 0 && len(s) > limits.MaxProcesses {
		return fmt.Errorf("%w: %d processes, limit is %d", ErrCapacityExceeded, len(s), limits.MaxProcesses)
	}

	var lastArrival, totalBurst int
	seen := make(map[int]struct{}, len(s))
	for _, p := range s {
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %d has burst %d", ErrMalformedInput, p.ID, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %d has arrival %d", ErrMalformedInput, p.ID, p.Arrival)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate process id %d", ErrMalformedInput, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Burst > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: total burst overflows", ErrMalformedInput)
		}
		totalBurst += p.Burst
		if p.Arrival > lastArrival {
			lastArrival = p.Arrival
		}
	}

	// every schedule ends by lastArrival + totalBurst
	if lastArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: arrival %d plus total burst %d overflows", ErrMalformedInput, lastArrival, totalBurst)
	}
	if horizon := lastArrival + totalBurst; limits.MaxTime > 0 && horizon > limits.MaxTime {
		return fmt.Errorf("%w: schedule may run until %d, limit is %d", ErrCapacityExceeded, horizon, limits.MaxTime)
	}
	return nil
}

func (s ProcessSet) TotalBurst() int {
	var total int
	for _, p := range s {
		total += p.Burst
	}
	return total
}
