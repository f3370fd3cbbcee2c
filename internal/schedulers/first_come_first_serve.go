package schedulers

import (
	"log/slog"

	"github.com/Dantexito/Taller3-OS/internal/core"
	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/responses"
)

// FirstComeFirstServe runs processes in input order without preemption.
// The input set is not modified.
func FirstComeFirstServe(processes core.ProcessSet, limits core.Limits) (Schedule, error) {
	if err := processes.Validate(limits); err != nil {
		return Schedule{}, err
	}

	proccesses := processes.Clone()
	cpu := core.NewCpu(len(proccesses))

	for i := range proccesses {
		proccess := &proccesses[i]
		cpu.Idle(proccess.Arrival - cpu.Now)
		cpu.Execute(proccess, 0)
	}

	return Schedule{Processes: proccesses, Gantt: cpu.Gantt, Cpu: cpu.Stop()}, nil
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequests, limits core.Limits) (responses.ScheduleResponse, error) {
	slog.Debug("running fcfs algorithm", slog.Int("processes", len(request.Jobs)))

	schedule, err := FirstComeFirstServe(request.Processes(), limits)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response, err := generateResponse(FirstComeFirstServeName, 0, schedule)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	slog.Debug("fcfs finished", slog.Float64("total_time", response.TotalTime))
	return response, nil
}
