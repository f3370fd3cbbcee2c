package core

// CpuMetric is the single cpu's accounting over one run, in time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu is the clock shared by the engines. It also records the gantt chart.
type Cpu struct {
	Now    int
	Gantt  []TimeSlice
	Metric CpuMetric
}

func NewCpu(capacity int) *Cpu {
	return &Cpu{Gantt: make([]TimeSlice, 0, capacity)}
}

// Idle advances the clock without running anything.
func (c *Cpu) Idle(units int) {
	if units <= 0 {
		return
	}
	c.Now += units
	c.Metric.IdleTime += units
}

// Execute runs p for at most quantum units and returns how long it ran.
// A quantum <= 0 runs p to completion.
func (c *Cpu) Execute(p *Process, quantum int) int {
	if !p.Start.IsSet() {
		p.Start = At(c.Now)
	}

	run := p.Remaining
	if quantum > 0 && quantum < run {
		run = quantum
	}
	if run > 0 {
		c.Gantt = append(c.Gantt, TimeSlice{PID: p.ID, Start: c.Now, Stop: c.Now + run})
	}

	p.Remaining -= run
	c.Now += run
	c.Metric.UtilizationTime += run

	if p.Remaining == 0 {
		p.Finish = At(c.Now)
	}
	return run
}

// Stop closes the accounting window at the current clock.
func (c *Cpu) Stop() CpuMetric {
	c.Metric.TotalTime = c.Now
	return c.Metric
}
