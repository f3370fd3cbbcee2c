package responses

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	StartTime      int     `json:"start_time"`
	FinishTime     int     `json:"finish_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}
type TimeSliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}
type ScheduleResponse struct {
	Algorithm             string              `json:"algorithm"`
	TimeQuantum           int                 `json:"time_quantum,omitempty"`
	TotalTime             float64             `json:"total_time"`
	IdleTime              float64             `json:"idle_time"`
	AverageWaitingTime    float64             `json:"average_waiting_time"`
	AverageResponseTime   float64             `json:"average_response_time"`
	AverageTurnAroundTime float64             `json:"average_turn_around_time"`
	CpuUtilization        float64             `json:"cpu_utilization"`
	CpuThroughput         float64             `json:"cpu_throughput"`
	Details               []ProcessResponse   `json:"details"`
	Gantt                 []TimeSliceResponse `json:"gantt"`
}
type AllResponse struct {
	FirstComeFirstServe ScheduleResponse `json:"fcfs"`
	RoundRobin          ScheduleResponse `json:"rr"`
}
