package supabase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlreadyRegistered(t *testing.T) {
	t.Run("matches by error code", func(t *testing.T) {
		assert.True(t, IsAlreadyRegistered(&Error{Status: 422, Code: "user_already_exists"}))
		assert.True(t, IsAlreadyRegistered(&Error{Status: 422, Code: "email_exists"}))
	})

	t.Run("falls back to message text", func(t *testing.T) {
		assert.True(t, IsAlreadyRegistered(&Error{Status: 400, Message: "User already registered"}))
		assert.True(t, IsAlreadyRegistered(&Error{Status: 400, Message: "A user with this email already exists"}))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("signup: %w", &Error{Code: "user_already_exists"})
		assert.True(t, IsAlreadyRegistered(wrapped))
	})

	t.Run("other failures do not match", func(t *testing.T) {
		assert.False(t, IsAlreadyRegistered(&Error{Status: 400, Code: "invalid_credentials", Message: "Invalid login credentials"}))
		assert.False(t, IsAlreadyRegistered(errors.New("network timeout")))
	})
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&Error{Status: 429, Message: "whatever"}))
	assert.True(t, IsRateLimited(&Error{Status: 400, Code: "over_request_rate_limit"}))
	assert.True(t, IsRateLimited(&Error{Status: 400, Message: "Email rate limit exceeded"}))
	assert.False(t, IsRateLimited(&Error{Status: 500, Message: "boom"}))
	assert.False(t, IsRateLimited(errors.New("boom")))
}
