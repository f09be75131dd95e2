// Package teoauth talks to the external JWT auth service. The client is an
// explicit value injected where needed; it never touches global state, and
// session persistence lives behind SessionStore so callers choose where the
// session blob goes (memory, cookie session, anything else).
package teoauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SessionTTL matches the 30-day expiry the dashboard always used.
const SessionTTL = 30 * 24 * time.Hour

// ErrNoToken is returned when an authenticated request is attempted without
// a session token.
var ErrNoToken = errors.New("no hay token de autenticacion")

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Session is the blob historically stored under the `teo-auth-session` key.
type Session struct {
	User    User      `json:"user"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`

	// VerifiedAt tracks the last successful remote verification so gating
	// can re-check on a schedule derived from the expiry instead of polling.
	VerifiedAt time.Time `json:"verifiedAt,omitempty"`
}

// Valid reports whether the session exists and has not expired locally. It
// says nothing about what the auth service thinks; use VerifyToken for that.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.Expires.After(time.Now())
}

type AuthResult struct {
	Success bool
	User    User
	Token   string
	Error   string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Authenticate exchanges credentials for a token at /api/auth/login-external.
// Backend-rejected credentials come back as AuthResult.Error with no Go
// error; only transport failures return err.
func (c *Client) Authenticate(ctx context.Context, email, password string) (AuthResult, *Session, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login-external", bytes.NewReader(payload))
	if err != nil {
		return AuthResult{}, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AuthResult{Error: "Error de conexión"}, nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		User    User   `json:"user"`
		Token   string `json:"token"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return AuthResult{Error: "Error de conexión"}, nil, fmt.Errorf("login: respuesta invalida: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		msg := body.Error
		if msg == "" {
			msg = "Credenciales incorrectas"
		}
		return AuthResult{Error: msg}, nil, nil
	}

	now := time.Now()
	session := &Session{
		User:       body.User,
		Token:      body.Token,
		Expires:    now.Add(SessionTTL),
		VerifiedAt: now,
	}
	return AuthResult{Success: true, User: body.User, Token: body.Token}, session, nil
}

// VerifyToken asks /api/auth/verify-token whether the session token is still
// good, refreshing the embedded user on success. An invalid token returns
// (false, nil): the caller should clear the session and send the user back
// to login.
func (c *Client) VerifyToken(ctx context.Context, session *Session) (bool, error) {
	if session == nil || session.Token == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/verify-token", nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify-token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, nil
	}

	var body struct {
		Valid bool `json:"valid"`
		User  User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("verify-token: respuesta invalida: %w", err)
	}
	if !body.Valid {
		return false, nil
	}

	session.User = body.User
	session.VerifiedAt = time.Now()
	return true, nil
}

// AuthenticatedRequest issues a request against the backend with the session
// bearer token attached. The caller owns the response body.
func (c *Client) AuthenticatedRequest(ctx context.Context, session *Session, method, endpoint string, body io.Reader) (*http.Response, error) {
	if session == nil || session.Token == "" {
		return nil, ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.Token)

	return c.httpClient.Do(req)
}

// SignOut drops the stored session. The auth service keeps no server-side
// session to revoke, so this never fails for remote reasons.
func (c *Client) SignOut(store SessionStore) error {
	return store.Clear()
}

// CheckConnection probes the login endpoint. A 405 still counts: the server
// answered, it just dislikes OPTIONS.
func (c *Client) CheckConnection(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.baseURL+"/api/auth/login-external", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return (resp.StatusCode >= 200 && resp.StatusCode < 300) || resp.StatusCode == http.StatusMethodNotAllowed
}

// DebugInfo mirrors the old dashboard debug panel.
func (c *Client) DebugInfo(session *Session) map[string]any {
	info := map[string]any{
		"baseUrl":          c.baseURL,
		"hasStoredSession": session != nil,
		"hasToken":         session != nil && session.Token != "",
		"isAuthenticated":  session != nil && session.Token != "",
		"isSessionValid":   session.Valid(),
	}
	if session != nil {
		info["currentUser"] = session.User
	}
	return info
}

// NextVerifyIn schedules the next remote verification from the expiry rather
// than a fixed polling interval: check at the halfway point between the last
// verification and expiry, clamped to [1 minute, 1 hour].
func NextVerifyIn(session *Session) time.Duration {
	if session == nil || !session.Valid() {
		return 0
	}
	anchor := session.VerifiedAt
	if anchor.IsZero() {
		anchor = time.Now()
	}
	half := session.Expires.Sub(anchor) / 2
	if half < time.Minute {
		return time.Minute
	}
	if half > time.Hour {
		return time.Hour
	}
	return half
}
