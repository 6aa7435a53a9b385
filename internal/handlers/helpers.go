package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"butce/internal/calendar"
	apperrors "butce/internal/errors"
	"butce/internal/flash"
	"butce/internal/logger"
	"butce/internal/middleware"
	"butce/internal/money"
)

// parsePathID parses a uint path parameter. An id that cannot exist is
// reported as not found.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrNotFound, "Invalid "+param)
	}
	return uint(id), nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	logError(c, err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// redirectWithError sends a failed mutation back to location: recoverable
// failures with a warning, internal ones with a danger message. A missing
// resource ends the request with a 404 instead.
func redirectWithError(c *gin.Context, location string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case appErr.IsValidation():
			flash.Write(c, flash.To(location, flash.Warning(appErr.Message)))
			return
		case appErr.IsNotFound():
			respondWithError(c, err)
			return
		}
	}

	logError(c, err)
	flash.Write(c, flash.To(location, flash.Danger(apperrors.ErrInternalServer.Message+".")))
}

// logError records failures that carry an internal cause or are not
// application errors at all.
func logError(c *gin.Context, err error) {
	log := logger.ForRequest(middleware.RequestID(c))

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return
	}
	log.Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
}

// bind decodes a form or JSON body into req, turning binding failures into
// an INVALID_INPUT error with a readable message.
func bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, bindingMessage(err))
	}
	return nil
}

// bindingMessage renders the first validation failure of err.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid form data."
	}

	fe := verrs[0]
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "transaction_type":
		return "Type must be income or expense."
	case "display_color":
		return "Color must be a display tag or a hex color."
	case "flex_date":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD or DD.MM.YYYY).", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// fieldLabel turns a struct field name like TargetDate into "Target date".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	label := b.String()
	label = strings.ReplaceAll(label, " i d", " ID")
	return label
}

// page renders a GET view: the pending flash messages plus the page data.
func page(c *gin.Context, s *middleware.Session, data gin.H) {
	view := gin.H{"flashes": flash.Pop(c)}
	if s != nil {
		view["user_id"] = s.UserID
	}
	for k, v := range data {
		view[k] = v
	}
	c.JSON(http.StatusOK, view)
}

// parseAmount converts a positive decimal form value to minor units.
func parseAmount(s string) (int64, error) {
	cents, err := money.ParseAmount(s)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be a positive number.")
	}
	return cents, nil
}

// parseLimit converts a monthly limit form value to minor units. A blank
// value means no limit.
func parseLimit(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	cents, err := money.ParseLimit(s)
	if errors.Is(err, money.ErrNegative) {
		return nil, apperrors.ErrNegativeLimit
	}
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly limit must be a number.")
	}
	return &cents, nil
}

// parseDate parses an optional date form value. Blank yields the zero time.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	d, ok := calendar.ParseDate(s)
	if !ok {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Dates must be YYYY-MM-DD or DD.MM.YYYY.")
	}
	return d, nil
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
