package schedulers

import (
	"github.com/Dantexito/Taller3-OS/internal/core"
	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/responses"
)

// ScheduleAll runs both policies over independent copies of the same jobs.
func ScheduleAll(request requests.ScheduleRequests, timeQuantum int, limits core.Limits) (responses.AllResponse, error) {
	// reject a bad quantum before any run starts
	if err := validateQuantum(timeQuantum); err != nil {
		return responses.AllResponse{}, err
	}

	fcfs, err := ScheduleFirstComeFirstServe(request, limits)
	if err != nil {
		return responses.AllResponse{}, err
	}
	rr, err := ScheduleRoundRobin(request, timeQuantum, limits)
	if err != nil {
		return responses.AllResponse{}, err
	}
	return responses.AllResponse{FirstComeFirstServe: fcfs, RoundRobin: rr}, nil
}
