package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client verifies bot-challenge tokens against the reCAPTCHA
// siteverify endpoint.
type Client struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a verifier client.
func NewClient(secretKey, verifyURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		secretKey: secretKey,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks the token. It returns nil when the verifier accepts,
// ErrVerificationFailed when it rejects, and ErrUnavailable when the
// verifier itself cannot answer.
func (c *Client) Verify(ctx context.Context, token string) error {
	form := url.Values{
		"secret":   {c.secretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Success {
		c.log.Warn("reCAPTCHA rejected token: error_codes=%v", result.ErrorCodes)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, result.ErrorCodes)
	}

	return nil
}
