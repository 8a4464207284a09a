package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/psptechhub/leadcap/internal/logging"
)

// firebaseCodes maps Identity Toolkit error strings to provider codes.
var firebaseCodes = map[string]Code{
	"EMAIL_NOT_FOUND":             CodeUserNotFound,
	"INVALID_PASSWORD":            CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   CodeInvalidCredential,
	"USER_DISABLED":               CodeUserDisabled,
	"INVALID_EMAIL":               CodeInvalidEmail,
	"EMAIL_EXISTS":                CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":               CodeWeakPassword,
	"TOO_MANY_ATTEMPTS_TRY_LATER": CodeTooManyRequests,
	"INVALID_ID_TOKEN":            CodeInvalidToken,
	"USER_NOT_FOUND":              CodeUserNotFound,
	"TOKEN_EXPIRED":               CodeTokenExpired,
}

// FirebaseClient is a Provider backed by the Firebase Identity Toolkit REST
// API. Sessions are stateless on the server, so SignOut is a no-op.
type FirebaseClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      logging.Logger
	now      func() time.Time
}

func NewFirebaseClient(endpoint, apiKey string, timeout time.Duration, log logging.Logger) *FirebaseClient {
	return &FirebaseClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		log:      log,
		now:      time.Now,
	}
}

type firebaseAuthResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type firebaseErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type firebaseLookupResponse struct {
	Users []struct {
		LocalID  string `json:"localId"`
		Email    string `json:"email"`
		Disabled bool   `json:"disabled"`
	} `json:"users"`
}

func (c *FirebaseClient) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	return c.authenticate(ctx, "accounts:signInWithPassword", email, password)
}

func (c *FirebaseClient) CreateAccount(ctx context.Context, email, password string) (*Credential, error) {
	return c.authenticate(ctx, "accounts:signUp", email, password)
}

func (c *FirebaseClient) authenticate(ctx context.Context, method, email, password string) (*Credential, error) {
	var resp firebaseAuthResponse
	err := c.call(ctx, method, map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Credential{UserID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken, IssuedAt: c.now()}, nil
}

func (c *FirebaseClient) SendPasswordReset(ctx context.Context, email string) error {
	return c.call(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

func (c *FirebaseClient) SignOut(ctx context.Context) error {
	return nil
}

// VerifySession looks the token up; an unknown or expired token fails.
func (c *FirebaseClient) VerifySession(ctx context.Context, idToken string) (*Credential, error) {
	var resp firebaseLookupResponse
	if err := c.call(ctx, "accounts:lookup", map[string]any{"idToken": idToken}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, newAuthError(CodeUserNotFound, nil)
	}
	u := resp.Users[0]
	if u.Disabled {
		return nil, newAuthError(CodeUserDisabled, nil)
	}
	return &Credential{UserID: u.LocalID, Email: u.Email, IDToken: idToken}, nil
}

func (c *FirebaseClient) call(ctx context.Context, method string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return newAuthError(CodeInternal, err)
	}

	u := fmt.Sprintf("%s/%s?key=%s", c.endpoint, method, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return newAuthError(CodeInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "identity request failed", "method", method, "error", err)
		return newAuthError(CodeNetworkRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAuthError(CodeNetworkRequestFailed, err)
	}

	if resp.StatusCode/100 != 2 {
		code, err := parseFirebaseError(data)
		c.log.Info(ctx, "identity request rejected", "method", method, "status", resp.StatusCode, "code", code)
		return newAuthError(code, err)
	}

	c.log.Debug(ctx, "identity request ok", "method", method)
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newAuthError(CodeInternal, fmt.Errorf("failed to decode %s response: %w", method, err))
	}
	return nil
}

// parseFirebaseError extracts the code from an error body. Messages may
// carry a suffix, e.g. "WEAK_PASSWORD : Password should be at least 6 characters".
func parseFirebaseError(data []byte) (Code, error) {
	var fe firebaseErrorResponse
	if err := json.Unmarshal(data, &fe); err != nil || fe.Error.Message == "" {
		return CodeInternal, errors.New("unrecognised identity error response")
	}

	msg := fe.Error.Message
	key := msg
	if i := strings.IndexAny(key, " :"); i >= 0 {
		key = key[:i]
	}
	if code, ok := firebaseCodes[key]; ok {
		return code, errors.New(msg)
	}
	return CodeInternal, errors.New(msg)
}
