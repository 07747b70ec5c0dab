package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// Order matters: the first target matched by errors.Is wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCriteria, http.StatusBadRequest, "invalid_criteria"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{domain.ErrUnknownMentor, http.StatusBadRequest, "unknown_mentor"},
	{domain.ErrUnknownUser, http.StatusBadRequest, "unknown_user"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrMatchNotFound, http.StatusNotFound, "match_not_found"},
	{domain.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{domain.ErrDuplicateRequest, http.StatusConflict, "duplicate_request"},
	{domain.ErrRerequestNotAllowed, http.StatusConflict, "rerequest_not_allowed"},
}

// RegisterValidatorTagNames makes validator report json field names.
func RegisterValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

func writeError(c *gin.Context, err error) {
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.From(c.Request.Context()).Error("request failed",
			slog.String("route", c.FullPath()),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(status, body)
}

func mapError(err error) (int, ErrorResponse) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		body := ErrorResponse{Error: err.Error(), Code: m.code}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			body.Fields = []FieldError{{Field: ve.Field, Reason: ve.Reason}}
		}
		return m.status, body
	}
	return http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  "internal",
	}
}

// bindError turns a ShouldBindJSON failure into a field-level error of kind.
func bindError(kind error, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &domain.ValidationError{Kind: kind, Field: fe.Field(), Reason: validationReason(fe)}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &domain.ValidationError{Kind: kind, Field: typeErr.Field, Reason: "has the wrong type: got " + typeErr.Value}
	}

	return &domain.ValidationError{Kind: kind, Field: "body", Reason: "malformed JSON"}
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + fe.Param()
	case "uuid":
		return "must be a UUID"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
