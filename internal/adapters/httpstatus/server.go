package httpstatus

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

// Armed: cuántos canales tienen timer vivo (RetentionScheduler).
type Armed interface {
	Len() int
}

// Pinger: *sqlx.DB / *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type StatusResponse struct {
	Status            string `json:"status"`
	Bot               string `json:"bot"`
	MonitoredChannels int    `json:"monitoredChannels"`
}

type Server struct {
	app     *fiber.App
	armed   Armed
	db      Pinger
	botName func() string
	log     zerolog.Logger
}

// New arma la app; botName devuelve "" mientras el gateway no está listo.
func New(armed Armed, db Pinger, botName func() string, m *metrics.Metrics, logger zerolog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          10 * time.Second,
		}),
		armed:   armed,
		db:      db,
		botName: botName,
		log:     logger.With().Str("component", "http").Logger(),
	}
	s.app.Use(recover.New())
	s.routes(m)
	return s
}

func (s *Server) routes(m *metrics.Metrics) {
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, the bot is running and ready to serve your commands!")
	})
	s.app.Get("/status", s.handleStatus)
	s.app.Get("/healthz", s.handleHealth)
	if m != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	bot := ""
	if s.botName != nil {
		bot = s.botName()
	}
	if bot == "" {
		bot = "Disconnected"
	}
	n := 0
	if s.armed != nil {
		n = s.armed.Len()
	}
	return c.JSON(StatusResponse{Status: "OK", Bot: bot, MonitoredChannels: n})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	if s.db == nil {
		return c.JSON(fiber.Map{"status": "ok"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		s.log.Warn().Err(err).Msg("healthz: db ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "db": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok", "db": "ok"})
}

// Start bloquea hasta Shutdown.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("🌐 HTTP listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App devuelve la app de fiber (tests).
func (s *Server) App() *fiber.App { return s.app }
