package schedulers

import (
	"log/slog"
	"sort"

	"github.com/Dantexito/Taller3-OS/internal/core"
	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/responses"
)

type ProcessQueue struct {
	queue []int
}

func (p *ProcessQueue) AddToEnd(index int) {
	p.queue = append(p.queue, index)
}

func (p *ProcessQueue) RemoveFromTop() (int, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	item := p.queue[0]
	p.queue = p.queue[1:]
	return item, true
}

// arrivals hands out process indexes in arrival order, ties by input order.
type arrivals struct {
	order []int
	next  int
}

func newArrivals(proccesses core.ProcessSet) *arrivals {
	order := make([]int, len(proccesses))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return proccesses[order[i]].Arrival < proccesses[order[j]].Arrival
	})
	return &arrivals{order: order}
}

// nextArrival is the arrival time of the first process not yet admitted.
func (a *arrivals) nextArrival(proccesses core.ProcessSet) (int, bool) {
	if a.next == len(a.order) {
		return 0, false
	}
	return proccesses[a.order[a.next]].Arrival, true
}

// admit enqueues everything that arrived at or before now.
func (a *arrivals) admit(proccesses core.ProcessSet, now int, ready *ProcessQueue) {
	for a.next < len(a.order) && proccesses[a.order[a.next]].Arrival <= now {
		ready.AddToEnd(a.order[a.next])
		a.next++
	}
}

// RoundRobin time slices the cpu between ready processes. Input order does not
// need to be sorted by arrival. The input set is not modified.
func RoundRobin(processes core.ProcessSet, timeQuantum int, limits core.Limits) (Schedule, error) {
	if err := validateQuantum(timeQuantum); err != nil {
		return Schedule{}, err
	}
	if err := processes.Validate(limits); err != nil {
		return Schedule{}, err
	}

	proccesses := processes.Clone()
	cpu := core.NewCpu(len(proccesses))
	pending := newArrivals(proccesses)
	ready := &ProcessQueue{queue: make([]int, 0, len(proccesses))}

	completed := 0
	for completed < len(proccesses) {
		pending.admit(proccesses, cpu.Now, ready)

		index, ok := ready.RemoveFromTop()
		if !ok {
			// nothing can be admitted before the next arrival, so skip the idle gap
			arrival, left := pending.nextArrival(proccesses)
			if !left {
				break
			}
			cpu.Idle(arrival - cpu.Now)
			continue
		}

		proccess := &proccesses[index]
		cpu.Execute(proccess, timeQuantum)

		// processes that arrived during the slice go ahead of the preempted one
		pending.admit(proccesses, cpu.Now, ready)

		if proccess.Completed() {
			completed++
		} else {
			ready.AddToEnd(index)
		}
	}

	return Schedule{Processes: proccesses, Gantt: cpu.Gantt, Cpu: cpu.Stop()}, nil
}

func ScheduleRoundRobin(request requests.ScheduleRequests, timeQuantum int, limits core.Limits) (responses.ScheduleResponse, error) {
	slog.Debug("running roundRobin algorithm", slog.Int("time_quantum", timeQuantum), slog.Int("processes", len(request.Jobs)))

	schedule, err := RoundRobin(request.Processes(), timeQuantum, limits)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response, err := generateResponse(RoundRobinName, timeQuantum, schedule)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	slog.Debug("roundRobin finished", slog.Float64("total_time", response.TotalTime))
	return response, nil
}
