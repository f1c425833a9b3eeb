package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"

	"devsites/internal/config"
	apperrors "devsites/pkg/errors"
)

const (
	maxNameLength    = 100
	maxMessageLength = 5000
)

// invalidProjectType is the only hard input failure in quoting
func invalidProjectType() *apperrors.AppError {
	return apperrors.InvalidInput("Invalid project type")
}

func requiredText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return "", apperrors.Validation(fmt.Sprintf("%s is required", field))
	}
	if n > max {
		return "", apperrors.Validation(fmt.Sprintf("%s must not exceed %d characters", field, max))
	}
	return value, nil
}

// normalizeEmail trims and lowercases, then checks the address shape
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.Validation("email is required")
	}
	if err := goa.ValidateFormat("email", email, goa.FormatEmail); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeValidation, "invalid email address", err)
	}
	return email, nil
}

// optionalText drops blank optional strings
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// pageBounds resolves skip/limit against the configured page sizes
func pageBounds(p *ListPayload, api config.APIConfig) (skip, limit int, err error) {
	skip, limit = 0, api.DefaultPageSize
	if p != nil && p.Skip != nil {
		skip = *p.Skip
	}
	if p != nil && p.Limit != nil {
		limit = *p.Limit
	}
	if skip < 0 {
		return 0, 0, apperrors.Validation("skip must not be negative")
	}
	if limit < 1 || limit > api.MaxPageSize {
		return 0, 0, apperrors.Validation(fmt.Sprintf("limit must be between 1 and %d", api.MaxPageSize))
	}
	return skip, limit, nil
}
