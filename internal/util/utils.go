package util

import (
	"fmt"

	"github.com/Dantexito/Taller3-OS/internal/core"
	"github.com/Dantexito/Taller3-OS/internal/responses"
)

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64, err error) {
	if len(proccessDetails) == 0 {
		err = fmt.Errorf("%w: no processes to average", core.ErrInvalidConfiguration)
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
