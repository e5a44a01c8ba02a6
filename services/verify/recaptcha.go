package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

	// Minimum confidence score for a submission to pass.
	scoreThreshold = 0.5
)

// Verifier gates booking submissions on a bot-mitigation token.
type Verifier interface {
	// Enforcing reports whether verification is active. When false the
	// handler skips the gate entirely (development pass-through).
	Enforcing() bool
	// Verify checks a client-supplied token against the provider.
	Verify(ctx context.Context, token string) bool
}

// RecaptchaVerifier verifies tokens against Google's siteverify endpoint.
// Network or parsing failures fail closed. Constructing it without a
// secret yields the documented permissive mode, never a silent fallback.
type RecaptchaVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewRecaptchaVerifier(secret string, logger *zap.Logger) *RecaptchaVerifier {
	if secret == "" {
		logger.Warn("reCAPTCHA secret key not configured, verification disabled")
	}
	return &RecaptchaVerifier{
		secret:   secret,
		endpoint: siteVerifyURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (v *RecaptchaVerifier) Enforcing() bool {
	return v.secret != ""
}

type siteVerifyResponse struct {
	Success bool     `json:"success"`
	Score   float64  `json:"score"`
	Errors  []string `json:"error-codes"`
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) bool {
	if !v.Enforcing() {
		return true
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		v.logger.Error("reCAPTCHA request build failed", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("reCAPTCHA verification error", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	var result siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		v.logger.Error("reCAPTCHA response decode failed", zap.Error(err))
		return false
	}

	if !result.Success || result.Score <= scoreThreshold {
		v.logger.Warn("reCAPTCHA rejected submission",
			zap.Bool("success", result.Success),
			zap.Float64("score", result.Score),
			zap.Strings("errorCodes", result.Errors))
		return false
	}
	return true
}
