package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func verifierFor(t *testing.T, handler http.HandlerFunc) *RecaptchaVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewRecaptchaVerifier("test-secret", zap.NewNop())
	v.endpoint = srv.URL
	return v
}

func TestRecaptchaVerifier_PassesAboveThreshold(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "test-secret", r.FormValue("secret"))
		assert.Equal(t, "tok-123", r.FormValue("response"))
		w.Write([]byte(`{"success": true, "score": 0.9}`))
	})

	assert.True(t, v.Verify(context.Background(), "tok-123"))
}

func TestRecaptchaVerifier_RejectsLowScore(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.3}`))
	})

	assert.False(t, v.Verify(context.Background(), "tok-123"))
}

func TestRecaptchaVerifier_RejectsUnsuccessful(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	})

	assert.False(t, v.Verify(context.Background(), "bad-token"))
}

func TestRecaptchaVerifier_FailsClosedOnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	v := NewRecaptchaVerifier("test-secret", zap.NewNop())
	v.endpoint = srv.URL

	assert.False(t, v.Verify(context.Background(), "tok-123"))
}

func TestRecaptchaVerifier_FailsClosedOnBadJSON(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	assert.False(t, v.Verify(context.Background(), "tok-123"))
}

func TestRecaptchaVerifier_PermissiveWithoutSecret(t *testing.T) {
	v := NewRecaptchaVerifier("", zap.NewNop())

	assert.False(t, v.Enforcing())
	// Pass-open without any network call.
	assert.True(t, v.Verify(context.Background(), ""))
}
