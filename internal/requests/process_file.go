package requests

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Dantexito/Taller3-OS/internal/core"
)

// LoadProcesses reads a process table: one header line, then "id arrival burst"
// per line separated by blanks. max <= 0 means no row limit.
func LoadProcesses(r io.Reader, max int) (core.ProcessSet, error) {
	scanner := bufio.NewScanner(r)

	// header
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %v", core.ErrMalformedInput, err)
		}
		return core.ProcessSet{}, nil
	}

	set := make(core.ProcessSet, 0)
	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 columns, got %d", core.ErrMalformedInput, line, len(fields))
		}

		var values [3]int
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", core.ErrMalformedInput, line, err)
			}
			values[i] = v
		}

		if max > 0 && len(set) == max {
			return nil, fmt.Errorf("%w: more than %d processes", core.ErrCapacityExceeded, max)
		}
		set = append(set, core.NewProcess(values[0], values[1], values[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", core.ErrMalformedInput, line, err)
	}

	return set, nil
}
