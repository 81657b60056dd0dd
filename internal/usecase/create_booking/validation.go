package create_booking

import (
	"fmt"
	"strings"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// validateRequest checks the required fields and their shape. All
// failures here are side-effect-free: nothing external has been
// touched yet. Each failure carries its reason so the client learns
// which field to correct.
func validateRequest(req *Request, verifierEnabled bool) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if len(req.Name) > domain.MaxNameLength {
		return &ValidationError{Reason: fmt.Sprintf("name must not exceed %d characters", domain.MaxNameLength)}
	}

	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Reason: "email is required"}
	}
	if !strings.Contains(req.Email, "@") {
		return &ValidationError{Reason: "invalid email address"}
	}

	if req.Date.IsZero() {
		return &ValidationError{Reason: "date is required"}
	}

	if req.StartTime.IsZero() {
		return &ValidationError{Reason: "time is required"}
	}
	if err := req.StartTime.Validate(); err != nil {
		return &ValidationError{Reason: "invalid time format, expected HH:MM"}
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return &ValidationError{Reason: fmt.Sprintf("message must not exceed %d characters", domain.MaxMessageLength)}
	}

	if verifierEnabled && strings.TrimSpace(req.CaptchaToken) == "" {
		return &ValidationError{Reason: "captcha token is required"}
	}

	return nil
}
