package authHandler

import (
	authService "github.com/mrniteshray/ExpenseTracker/internal/api/auth/service"
	"github.com/mrniteshray/ExpenseTracker/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	authGroup := srv.Group("/auth")

	authGroup.Post("/signup", h.SignUp)
	authGroup.Post("/login", h.Login)
}
