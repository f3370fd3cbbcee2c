package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Dantexito/Taller3-OS/api"
	"github.com/Dantexito/Taller3-OS/config"
	"github.com/Dantexito/Taller3-OS/internal/client"
	"github.com/Dantexito/Taller3-OS/internal/logging"
	"github.com/Dantexito/Taller3-OS/internal/report"
	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/responses"
	"github.com/Dantexito/Taller3-OS/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	cfg := config.GetSchedulerConfig()
	logger := logging.BuildLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "serve" {
		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))
		logger.Info("scheduler api listening", slog.Int("port", cfg.Port))
		log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
		return
	}

	if args[0] != "report" {
		log.Fatalf("%v: unknown command %q, use serve or report", ErrInvalidArgs, args[0])
	}
	if err := runReport(os.Stdout, cfg, args[1:]); err != nil {
		log.Fatal(err)
	}
}

// runReport schedules the process file with both policies and prints them.
func runReport(w io.Writer, cfg *config.SchedulerConfig, args []string) error {
	flags := flag.NewFlagSet("report", flag.ContinueOnError)
	remote := flags.String("remote", "", "scheduler api base url, runs locally when empty")
	quantum := flags.Int("q", cfg.RoundRobinTimeQuantum, "round robin time quantum")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	processes, err := requests.LoadProcesses(f, cfg.MaxProcesses)
	if err != nil {
		return err
	}
	request := requests.FromProcesses(processes, *quantum)

	var all responses.AllResponse
	if *remote != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		all, err = client.New(*remote).All(ctx, request)
	} else {
		all, err = schedulers.ScheduleAll(request, *quantum, cfg.Limits())
	}
	if err != nil {
		return err
	}

	report.Write(w, all.FirstComeFirstServe)
	report.Write(w, all.RoundRobin)
	return nil
}
