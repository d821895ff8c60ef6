package authService

import (
	"errors"

	"github.com/mrniteshray/ExpenseTracker/internal/api/auth"
	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/mrniteshray/ExpenseTracker/pkg/identity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) Register(ctx context.Context, req auth.SignUpRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	account, err := s.identityProvider.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Email already exists")
			return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create account")
		return auth.AuthResponse{}, auth.ErrCreateAccount
	}

	token, err := s.identityProvider.IssueToken(account.UID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to issue token")
		return auth.AuthResponse{}, auth.ErrIssueToken
	}

	return auth.AuthResponse{
		UID:   account.UID,
		Email: account.Email,
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	account, err := s.identityProvider.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Account not found")
			return auth.AuthResponse{}, auth.ErrUserNotFound
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to look up account")
		return auth.AuthResponse{}, auth.ErrLoginFailed
	}

	token, err := s.identityProvider.IssueToken(account.UID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to issue token")
		return auth.AuthResponse{}, auth.ErrIssueToken
	}

	return auth.AuthResponse{
		UID:   account.UID,
		Email: account.Email,
		Token: token,
	}, nil
}
