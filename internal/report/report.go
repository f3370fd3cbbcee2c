package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Dantexito/Taller3-OS/internal/responses"
)

// Write outputs the title, a gantt chart and the schedule table of one run.
func Write(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (q=%d)", title, response.TimeQuantum)
	}

	outputTitle(w, title)
	outputGantt(w, response.Gantt)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.TimeSliceResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].ProcessId)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, len(response.Details))
	for i, details := range response.Details {
		rows[i] = []string{
			fmt.Sprint(details.ProcessId),
			fmt.Sprint(details.ArrivalTime),
			fmt.Sprint(details.BurstTime),
			fmt.Sprint(details.StartTime),
			fmt.Sprint(details.FinishTime),
			fmt.Sprint(details.ResponseTime),
			fmt.Sprint(details.WaitingTime),
			fmt.Sprint(details.TurnAroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Idle\n%.0f/%.0f", response.IdleTime, response.TotalTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.SetCaption(true, fmt.Sprintf("Throughput %.2f/t, utilization %.0f%%", response.CpuThroughput, response.CpuUtilization*100))
	table.Render()
}
