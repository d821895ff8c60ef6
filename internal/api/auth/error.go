package auth

import (
	"net/http"

	"github.com/mrniteshray/ExpenseTracker/pkg/response"
)

var (
	// The identity provider reports a duplicate address as a plain 400
	// rather than a 409; kept to match the existing API contract.
	ErrEmailAlreadyExists = response.NewError(http.StatusBadRequest, "email already exists")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateAccount      = response.NewError(http.StatusBadRequest, "failed to create account")
	ErrLoginFailed        = response.NewError(http.StatusBadRequest, "failed to login")
	ErrIssueToken         = response.NewError(http.StatusInternalServerError, "failed to issue token")
)
