package schedulers

import (
	"fmt"

	"github.com/Dantexito/Taller3-OS/internal/core"
)

const (
	FirstComeFirstServeName = "First-come, first-serve"
	RoundRobinName          = "Round-robin"
)

// Schedule is the outcome of one engine run over its own copy of the input.
type Schedule struct {
	Processes core.ProcessSet
	Gantt     []core.TimeSlice
	Cpu       core.CpuMetric
}

// Executed is the sum of every dispatched slice.
func (s Schedule) Executed() int {
	var total int
	for _, slice := range s.Gantt {
		total += slice.Len()
	}
	return total
}

func validateQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidConfiguration, timeQuantum)
	}
	return nil
}
