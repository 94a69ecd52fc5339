package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Caps how much of a response body is read.
const MaxBodyBytes = 4 << 20

// DecodeJSONBody decodes a response body; an empty body leaves dest untouched.
func DecodeJSONBody(body io.Reader, dest any) error {

	data, err := io.ReadAll(io.LimitReader(body, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Error("Failed to parse response JSON", slog.String("error", err.Error()))
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ValidateStruct turns validator failures into a VALIDATION_ERROR with one detail per field.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return appErrors.InternalError("Unexpected validation error").WithError(err)
	}

	slog.Warn("Input validation failed", slog.String("error", validationErrs.Error()))

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return appErrors.ValidationError("Validation failed").WithDetail(strings.Join(details, "; ")).WithError(validationErrs)
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", err.Field())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
	}
}

// ParseAndValidate decodes a request body into dest and validates it,
// writing the error response itself when either step fails.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := slog.Default()

	defer r.Body.Close()

	if err := DecodeJSONBody(r.Body, dest); err != nil {
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		response.Error(w, err)
		return false
	}

	return true
}

// ParseID reads a positive integer route parameter.
func ParseID(r *http.Request, key string) (int64, error) {

	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Invalid %s", key))
	}

	return id, nil
}
