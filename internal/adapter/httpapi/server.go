// Package httpapi serves the dashboard API: normalized earthquake rows with
// summary statistics, a CSV export, and the health/readiness/metrics trio.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/explorer"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

var validate = validator.New()

// ReadinessChecker reports whether the service can serve live data.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server hosts the dashboard API.
type Server struct {
	app    *fiber.App
	addr   string
	logger *slog.Logger
}

// NewServer wires the API, export, health, readiness, and metrics routes.
func NewServer(addr string, svc *explorer.Service, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	s := &Server{app: app, addr: addr, logger: logger}

	v1 := app.Group("/api/v1")
	v1.Get("/earthquakes", handleEarthquakes(svc))
	v1.Get("/earthquakes/export", handleExport(svc, metrics))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Get("/readyz", handleReady(ready))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// Start begins listening until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Test routes a request through the app without a listener, for tests.
func (s *Server) Test(req *http.Request) (*http.Response, error) {
	return s.app.Test(req)
}

// earthquakeQuery binds and validates the dashboard's filter controls.
// Defaults match the original UI: past 7 days, M4.5+, 100 results.
type earthquakeQuery struct {
	Window    string `query:"window" validate:"oneof=all last_hour last_day last_week last_month"`
	Magnitude string `query:"magnitude" validate:"oneof=all significant min_4_5 min_2_5 min_1_0"`
	Limit     int    `query:"limit" validate:"min=10,max=1000"`
}

func parseQuery(c *fiber.Ctx) (domain.QueryParameters, error) {
	q := earthquakeQuery{
		Window:    string(domain.WindowLastWeek),
		Magnitude: string(domain.MagnitudeMin45),
		Limit:     100,
	}
	if err := c.QueryParser(&q); err != nil {
		return domain.QueryParameters{}, err
	}
	if err := validate.Struct(q); err != nil {
		return domain.QueryParameters{}, err
	}
	return domain.QueryParameters{
		Window:    domain.TimeWindow(q.Window),
		Magnitude: domain.MagnitudeFilter(q.Magnitude),
		Limit:     q.Limit,
	}, nil
}

// exploreOrError maps service failures onto HTTP statuses: a feed failure is
// a 502 with a user-visible, retry-by-hand message; anything else is a 500.
func exploreOrError(c *fiber.Ctx, svc *explorer.Service) (explorer.Result, error) {
	params, err := parseQuery(c)
	if err != nil {
		return explorer.Result{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := svc.Explore(c.Context(), params)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return explorer.Result{}, fiber.NewError(fiber.StatusBadGateway,
				"failed to fetch earthquake data; please try again")
		}
		return explorer.Result{}, fiber.NewError(fiber.StatusInternalServerError,
			"failed to process earthquake data")
	}
	return result, nil
}

func handleEarthquakes(svc *explorer.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := exploreOrError(c, svc)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}

func handleExport(svc *explorer.Service, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := exploreOrError(c, svc)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := domain.WriteCSV(&buf, result.Earthquakes); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build export")
		}
		metrics.ExportsServed.Inc()

		filename := fmt.Sprintf("earthquake_data_%s.csv", time.Now().Format("20060102_150405"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(buf.Bytes())
	}
}

func handleReady(ready ReadinessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		if err := ready.CheckReadiness(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not ready",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}
