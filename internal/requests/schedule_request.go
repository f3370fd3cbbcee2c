package requests

import "github.com/Dantexito/Taller3-OS/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum is only read by round robin; zero means the configured default.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// Processes converts the jobs in request order.
func (r ScheduleRequests) Processes() core.ProcessSet {
	set := make(core.ProcessSet, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		set = append(set, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	return set
}

func FromProcesses(set core.ProcessSet, timeQuantum int) ScheduleRequests {
	jobs := make([]Job, 0, len(set))
	for _, p := range set {
		jobs = append(jobs, Job{ProcessId: p.ID, ArrivalTime: p.Arrival, BurstTime: p.Burst})
	}
	return ScheduleRequests{Jobs: jobs, TimeQuantum: timeQuantum}
}
