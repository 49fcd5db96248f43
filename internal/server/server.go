package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
	"github.com/davidmartinii-sketch/ai-business-assistant/internal/store"
)

// Server owns the fiber app and the handlers behind it.
type Server struct {
	app    *fiber.App
	auther *auth.Auther
	users  *store.Users
	logger auth.Logger
}

// New builds the app: security middleware, routes, and the error handler
// that shapes every failure into the response envelope.
func New(auther *auth.Auther, users *store.Users, logger auth.Logger) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler:          newErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(Fail(fiber.StatusTooManyRequests, "Too many requests, please try again later"))
		},
	}))

	s := &Server{
		app:    app,
		auther: auther,
		users:  users,
		logger: logger,
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.hello)
	s.app.Get("/health", s.health)

	authGroup := s.app.Group("/auth")
	authGroup.Post("/register", s.register)
	authGroup.Post("/login", s.login)
	authGroup.Get("/me", RequireAuth(s.auther.TokenService()), s.me)

	s.app.Post("/users", s.createUser)
	s.app.Get("/users", s.listUsers)

	s.app.Use(s.notFound)
}

// App exposes the fiber app, mainly for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello World"})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(Fail(fiber.StatusNotFound, "Not Found"))
}
