package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Supabase GoTrue REST API. It only covers the auth
// operations this backend needs: sign-up, admin user creation, password grant
// and token introspection.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// User is the provider-side identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the result of a successful authentication.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

func NewClient(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// HasAdminAccess reports whether a service-role key is configured, which
// enables the pre-confirmed registration path.
func (c *Client) HasAdminAccess() bool {
	return c.serviceKey != ""
}

// SignUp performs a standard sign-up. Depending on project settings the user
// may still need to confirm their email; in that case the returned session has
// an empty access token.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	var result struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		AccessToken string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User        *User  `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", c.anonKey, body, &result); err != nil {
		return nil, err
	}

	session := &Session{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
	// GoTrue returns the bare user object when confirmation is pending and a
	// session envelope when auto-confirm is on.
	if result.User != nil {
		session.User = *result.User
	} else {
		session.User = User{ID: result.ID, Email: result.Email}
	}
	return session, nil
}

// AdminCreateUser creates an identity with the email already confirmed.
// Requires the service-role key.
func (c *Client) AdminCreateUser(ctx context.Context, email, password string) (*User, error) {
	if c.serviceKey == "" {
		return nil, fmt.Errorf("supabase: service-role key not configured")
	}

	body := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/v1/admin/users", c.serviceKey, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// PasswordGrant authenticates email/password credentials and returns a session.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", c.anonKey, body, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, &Error{Status: http.StatusUnauthorized, Message: "no session returned"}
	}
	return &session, nil
}

// GetUser resolves a bearer token to its identity.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, key string, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
