package schedulers

import (
	"fmt"

	"github.com/Dantexito/Taller3-OS/internal/core"
	"github.com/Dantexito/Taller3-OS/internal/responses"
	"github.com/Dantexito/Taller3-OS/internal/util"
)

// Metrics are the aggregate figures of one finished run.
type Metrics struct {
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	AverageWaitingTime    float64
	// Throughput is processes per time unit over [0, TotalTime].
	Throughput float64
	TotalTime  int
}

// CalculateMetrics aggregates a set whose start and finish times are all set.
func CalculateMetrics(processes core.ProcessSet) (Metrics, error) {
	proccessDetails, err := generateProcessDetails(processes)
	if err != nil {
		return Metrics{}, err
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime, err := util.CalculateAverage(proccessDetails)
	if err != nil {
		return Metrics{}, err
	}

	var lastFinish int
	for _, details := range proccessDetails {
		if details.FinishTime > lastFinish {
			lastFinish = details.FinishTime
		}
	}
	if lastFinish == 0 {
		return Metrics{}, fmt.Errorf("%w: schedule has zero length", core.ErrInvalidConfiguration)
	}

	return Metrics{
		AverageTurnAroundTime: averageTimeAroundTime,
		AverageResponseTime:   averageResponseTime,
		AverageWaitingTime:    averageWaitingTime,
		Throughput:            float64(len(proccessDetails)) / float64(lastFinish),
		TotalTime:             lastFinish,
	}, nil
}

func generateResponse(algorithm string, timeQuantum int, schedule Schedule) (responses.ScheduleResponse, error) {
	metrics, err := CalculateMetrics(schedule.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	proccessDetails, err := generateProcessDetails(schedule.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	gantt := make([]responses.TimeSliceResponse, 0, len(schedule.Gantt))
	for _, slice := range schedule.Gantt {
		gantt = append(gantt, responses.TimeSliceResponse{ProcessId: slice.PID, Start: slice.Start, Stop: slice.Stop})
	}

	var response = responses.ScheduleResponse{
		Algorithm:             algorithm,
		TimeQuantum:           timeQuantum,
		TotalTime:             float64(metrics.TotalTime),
		IdleTime:              float64(schedule.Cpu.IdleTime),
		CpuUtilization:        schedule.Cpu.Utilization(),
		CpuThroughput:         metrics.Throughput,
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnAroundTime,
		Details:               proccessDetails,
		Gantt:                 gantt,
	}
	return response, nil
}

func generateProcessDetails(processes core.ProcessSet) ([]responses.ProcessResponse, error) {
	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, proccess := range processes {
		start, started := proccess.Start.Value()
		finish, finished := proccess.Finish.Value()
		if !started || !finished {
			return nil, fmt.Errorf("%w: process %d", core.ErrNotScheduled, proccess.ID)
		}

		turnAroundTime := finish - proccess.Arrival
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      proccess.ID,
			ArrivalTime:    proccess.Arrival,
			BurstTime:      proccess.Burst,
			StartTime:      start,
			FinishTime:     finish,
			ResponseTime:   float64(start - proccess.Arrival),
			TurnAroundTime: float64(turnAroundTime),
			WaitingTime:    float64(turnAroundTime - proccess.Burst),
		})
	}
	return proccessDetails, nil
}
