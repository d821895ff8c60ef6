package config

import (
	"fmt"
	"os"
	"time"

	authHandler "github.com/mrniteshray/ExpenseTracker/internal/api/auth/handler"
	authService "github.com/mrniteshray/ExpenseTracker/internal/api/auth/service"
	expenseHandler "github.com/mrniteshray/ExpenseTracker/internal/api/expense/handler"
	expenseRepository "github.com/mrniteshray/ExpenseTracker/internal/api/expense/repository"
	expenseService "github.com/mrniteshray/ExpenseTracker/internal/api/expense/service"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	"github.com/mrniteshray/ExpenseTracker/internal/middleware"
	"github.com/mrniteshray/ExpenseTracker/pkg/identity"
	"github.com/mrniteshray/ExpenseTracker/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/supabase-community/supabase-go"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	expenseStore     *supabase.Client
	identityProvider identity.ItfIdentity
	handlers         []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithExpenseStore connects the PostgREST-backed document store holding
// expense records.
func WithExpenseStore() ServerOption {
	return func(s *Server) error {
		client, err := supabase.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_KEY"), &supabase.ClientOptions{})
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to expense store: %v", err)
			}
			return fmt.Errorf("failed to create expense store client: %w", err)
		}
		s.expenseStore = client
		return nil
	}
}

func WithIdentityProvider(provider identity.ItfIdentity) ServerOption {
	return func(s *Server) error {
		s.identityProvider = provider
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authServices := authService.New(s.log, s.identityProvider)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Expense Domain
	expenseRepo := expenseRepository.New(s.expenseStore, s.log, s.utils)
	expenseServices := expenseService.NewExpenseService(s.log, expenseRepo)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, expenseHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Expense Tracker API is running",
			"version": "1.0.0",
		})
	})

	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": entity.FormatTimestamp(time.Now()),
		})
	})
}
