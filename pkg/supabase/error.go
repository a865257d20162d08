package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a GoTrue API error. Code carries the machine-readable error_code
// field newer GoTrue versions return; Message is the human-readable text.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

func decodeError(resp *http.Response) error {
	var body struct {
		Code             string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Msg
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = body.ErrorDescription
	}
	if msg == "" {
		msg = resp.Status
	}

	return &Error{Status: resp.StatusCode, Code: body.Code, Message: msg}
}

// IsAlreadyRegistered reports whether err means the email is taken. The
// error_code is checked first; the text match remains as a fallback for older
// GoTrue deployments that only return a message.
func IsAlreadyRegistered(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case "user_already_exists", "email_exists":
		return true
	}
	text := strings.ToLower(apiErr.Message)
	return strings.Contains(text, "already registered") ||
		strings.Contains(text, "already exists") ||
		strings.Contains(text, "user already") ||
		strings.Contains(text, "duplicate")
}

// IsRateLimited reports whether err is a provider-side throttle.
func IsRateLimited(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == http.StatusTooManyRequests {
		return true
	}
	switch apiErr.Code {
	case "over_request_rate_limit", "over_email_send_rate_limit":
		return true
	}
	text := strings.ToLower(apiErr.Message)
	return strings.Contains(text, "rate limit") || strings.Contains(text, "too many requests")
}
