package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	domainerrors "interact-club.backend/internal/domain/errors"
)

// DateLayout is the calendar date format used by every dated record.
const DateLayout = "2006-01-02"

var validate = validator.New()

// columnLimits mirrors the varchar sizes of the storage models.
var columnLimits = map[string]int{
	"name":         120,
	"position":     120,
	"email":        255,
	"subject":      255,
	"caption":      255,
	"title":        200,
	"venue":        200,
	"office_hours": 200,
	"time":         60,
	"phone":        40,
}

func checkLength(field, value string) error {
	limit, ok := columnLimits[field]
	if !ok {
		return nil
	}
	if err := validate.Var(value, "max="+strconv.Itoa(limit)); err != nil {
		return domainerrors.InvalidInput(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

func requireText(field string, value *string) error {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		return domainerrors.InvalidInput(field + " is required")
	}
	return checkLength(field, *value)
}

func requireEmail(field string, value *string) error {
	*value = strings.TrimSpace(*value)
	if err := validate.Var(*value, "required,email"); err != nil {
		return domainerrors.InvalidInput(field + " must be a valid email address")
	}
	return checkLength(field, *value)
}

func requireDate(field string, value *string) error {
	*value = strings.TrimSpace(*value)
	if _, err := time.Parse(DateLayout, *value); err != nil {
		return domainerrors.InvalidInput(field + " must be a date in YYYY-MM-DD format")
	}
	return nil
}

// cleanList trims entries and drops blank ones.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
