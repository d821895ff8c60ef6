package authService

import (
	"errors"
	"io"
	"testing"

	"github.com/mrniteshray/ExpenseTracker/internal/api/auth"
	"github.com/mrniteshray/ExpenseTracker/pkg/identity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeIdentity struct {
	accounts    map[string]identity.Account
	tokenErr    error
	providerErr error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{accounts: map[string]identity.Account{}}
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email string, _ string) (identity.Account, error) {
	if f.providerErr != nil {
		return identity.Account{}, f.providerErr
	}
	if _, ok := f.accounts[email]; ok {
		return identity.Account{}, identity.ErrEmailExists
	}
	account := identity.Account{UID: "uid-" + email, Email: email}
	f.accounts[email] = account
	return account, nil
}

func (f *fakeIdentity) FindAccountByEmail(_ context.Context, email string) (identity.Account, error) {
	if f.providerErr != nil {
		return identity.Account{}, f.providerErr
	}
	account, ok := f.accounts[email]
	if !ok {
		return identity.Account{}, identity.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeIdentity) IssueToken(uid string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return "token-" + uid, nil
}

func newAuthService(provider identity.ItfIdentity) IAuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, provider)
}

func TestRegister(t *testing.T) {
	provider := newFakeIdentity()
	service := newAuthService(provider)

	got, err := service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-alice@example.com", got.UID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "token-uid-alice@example.com", got.Token)
}

func TestRegisterEmailAlreadyExists(t *testing.T) {
	provider := newFakeIdentity()
	service := newAuthService(provider)

	_, err := service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "different456",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterProviderFailure(t *testing.T) {
	provider := newFakeIdentity()
	provider.providerErr = errors.New("provider unreachable")
	service := newAuthService(provider)

	_, err := service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrCreateAccount)
}

func TestRegisterTokenFailure(t *testing.T) {
	provider := newFakeIdentity()
	provider.tokenErr = errors.New("signing failed")
	service := newAuthService(provider)

	_, err := service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrIssueToken)
}

func TestLogin(t *testing.T) {
	provider := newFakeIdentity()
	service := newAuthService(provider)

	_, err := service.Register(context.Background(), auth.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	got, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-alice@example.com", got.UID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.NotEmpty(t, got.Token)
}

func TestLoginUnknownEmail(t *testing.T) {
	provider := newFakeIdentity()
	service := newAuthService(provider)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLoginProviderFailure(t *testing.T) {
	provider := newFakeIdentity()
	provider.providerErr = errors.New("provider unreachable")
	service := newAuthService(provider)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrLoginFailed)
}
