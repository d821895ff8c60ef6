package identity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jwtPkg "github.com/mrniteshray/ExpenseTracker/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Sentinel errors for the two gateway outcomes the auth domain branches on.
// Everything else surfaces as a wrapped transport or provider error.
var (
	ErrEmailExists     = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

type Account struct {
	UID   string
	Email string
}

// ItfIdentity is the narrow contract to the external Identity Gateway:
// account creation, lookup by email, and bearer token issuance. Credential
// storage and verification live entirely on the provider side.
type ItfIdentity interface {
	CreateAccount(ctx context.Context, email string, password string) (Account, error)
	FindAccountByEmail(ctx context.Context, email string) (Account, error)
	IssueToken(uid string) (string, error)
}

type identityService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) ItfIdentity {
	return &identityService{
		baseURL: strings.TrimRight(os.Getenv("IDENTITY_API_URL"), "/"),
		apiKey:  os.Getenv("IDENTITY_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type accountPayload struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type lookupRequest struct {
	Email []string `json:"email"`
}

type lookupResponse struct {
	Users []accountPayload `json:"users"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (i *identityService) CreateAccount(ctx context.Context, email string, password string) (Account, error) {
	body, status, err := i.post(ctx, "/v1/accounts:signUp", signUpRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: false,
	})
	if err != nil {
		return Account{}, err
	}

	if status != http.StatusOK {
		message := providerMessage(body)
		i.log.WithFields(logrus.Fields{
			"status":  status,
			"message": message,
		}).Warn("Identity provider rejected account creation")

		if strings.Contains(message, "EMAIL_EXISTS") {
			return Account{}, ErrEmailExists
		}
		return Account{}, fmt.Errorf("identity provider error: %s", message)
	}

	var payload accountPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Account{}, fmt.Errorf("failed to parse identity provider response: %w", err)
	}

	return Account{UID: payload.LocalID, Email: payload.Email}, nil
}

func (i *identityService) FindAccountByEmail(ctx context.Context, email string) (Account, error) {
	body, status, err := i.post(ctx, "/v1/accounts:lookup", lookupRequest{Email: []string{email}})
	if err != nil {
		return Account{}, err
	}

	if status != http.StatusOK {
		message := providerMessage(body)
		i.log.WithFields(logrus.Fields{
			"status":  status,
			"message": message,
		}).Warn("Identity provider rejected account lookup")
		return Account{}, fmt.Errorf("identity provider error: %s", message)
	}

	var payload lookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Account{}, fmt.Errorf("failed to parse identity provider response: %w", err)
	}

	if len(payload.Users) == 0 {
		return Account{}, ErrAccountNotFound
	}

	return Account{UID: payload.Users[0].LocalID, Email: payload.Users[0].Email}, nil
}

// IssueToken signs an opaque bearer token bound to the uid, the provider's
// custom-token flow. Clients present it on subsequent calls; verification is
// not this service's concern.
func (i *identityService) IssueToken(uid string) (string, error) {
	token, _, err := jwtPkg.Sign(map[string]interface{}{"uid": uid}, 24*time.Hour)
	if err != nil {
		i.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to sign bearer token")
		return "", err
	}
	return token, nil
}

func (i *identityService) post(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	url := fmt.Sprintf("%s%s?key=%s", i.baseURL, path, i.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}

func providerMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error.Message == "" {
		return "unknown error"
	}
	return payload.Error.Message
}
