package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Dantexito/Taller3-OS/config"
	"github.com/Dantexito/Taller3-OS/internal/logging"
	"github.com/Dantexito/Taller3-OS/internal/requests"
	"github.com/Dantexito/Taller3-OS/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

// NewApp wires the v1 routes onto a fresh fiber app.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format", err)
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request, s.config.Limits())
	if err != nil {
		return s.badRequest(ctx, err.Error(), err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format", err)
	}
	response, err := schedulers.ScheduleRoundRobin(request, s.timeQuantum(request), s.config.Limits())
	if err != nil {
		return s.badRequest(ctx, err.Error(), err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format", err)
	}
	response, err := schedulers.ScheduleAll(request, s.timeQuantum(request), s.config.Limits())
	if err != nil {
		return s.badRequest(ctx, err.Error(), err)
	}

	return ctx.JSON(response)
}

// timeQuantum prefers the request's quantum; a negative one is passed through
// so the scheduler rejects it.
func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, message string, err error) error {
	s.log.Warn("request rejected", slog.String("path", ctx.Path()), logging.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
