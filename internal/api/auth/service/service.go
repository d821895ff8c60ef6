package authService

import (
	"github.com/mrniteshray/ExpenseTracker/internal/api/auth"
	"github.com/mrniteshray/ExpenseTracker/pkg/identity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.SignUpRequest) (auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
}

type authService struct {
	log              *logrus.Logger
	identityProvider identity.ItfIdentity
}

func New(log *logrus.Logger, identityProvider identity.ItfIdentity) IAuthService {
	return &authService{
		log:              log,
		identityProvider: identityProvider,
	}
}
