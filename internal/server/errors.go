package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	dealregdomain "github.com/smallbiznis/partnerportal/internal/dealreg/domain"
	"github.com/smallbiznis/partnerportal/internal/identity"
	learningdomain "github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	orderformdomain "github.com/smallbiznis/partnerportal/internal/orderform/domain"
	partnerappdomain "github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, identity.ErrInvalidToken),
		errors.Is(err, identity.ErrMissingClaims),
		errors.Is(err, quotedomain.ErrInvalidSubject),
		errors.Is(err, orderformdomain.ErrInvalidSubject),
		errors.Is(err, dealregdomain.ErrInvalidSubject):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isPricingValidationError(err),
		isQuoteValidationError(err),
		isOrderFormValidationError(err),
		isPartnerApplicationValidationError(err),
		isLearningMaterialValidationError(err),
		isDealRegistrationValidationError(err):
		return true
	default:
		return false
	}
}

func isPricingValidationError(err error) bool {
	return errors.Is(err, pricingdomain.ErrInvalidProductLine) ||
		errors.Is(err, pricingdomain.ErrInvalidVariant) ||
		errors.Is(err, pricingdomain.ErrInvalidSubscription)
}

func isQuoteValidationError(err error) bool {
	switch {
	case errors.Is(err, quotedomain.ErrInvalidProductLine),
		errors.Is(err, quotedomain.ErrInvalidSubscription),
		errors.Is(err, quotedomain.ErrInvalidCameraCount),
		errors.Is(err, quotedomain.ErrInvalidStarterPack),
		errors.Is(err, quotedomain.ErrInvalidExchangeRate),
		errors.Is(err, quotedomain.ErrMissingClientName),
		errors.Is(err, quotedomain.ErrMissingClientCompany),
		errors.Is(err, quotedomain.ErrMissingClientEmail),
		errors.Is(err, quotedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isOrderFormValidationError(err error) bool {
	return errors.Is(err, orderformdomain.ErrInvalidQuote) ||
		errors.Is(err, orderformdomain.ErrInvalidID)
}

func isPartnerApplicationValidationError(err error) bool {
	switch {
	case errors.Is(err, partnerappdomain.ErrInvalidCompany),
		errors.Is(err, partnerappdomain.ErrInvalidContact),
		errors.Is(err, partnerappdomain.ErrInvalidEmail),
		errors.Is(err, partnerappdomain.ErrInvalidStatus),
		errors.Is(err, partnerappdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isLearningMaterialValidationError(err error) bool {
	switch {
	case errors.Is(err, learningdomain.ErrInvalidTitle),
		errors.Is(err, learningdomain.ErrInvalidCategory),
		errors.Is(err, learningdomain.ErrInvalidURL),
		errors.Is(err, learningdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isDealRegistrationValidationError(err error) bool {
	switch {
	case errors.Is(err, dealregdomain.ErrInvalidCustomer),
		errors.Is(err, dealregdomain.ErrInvalidCameras),
		errors.Is(err, dealregdomain.ErrInvalidStatus),
		errors.Is(err, dealregdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, orderformdomain.ErrNotFound),
		errors.Is(err, partnerappdomain.ErrNotFound),
		errors.Is(err, learningdomain.ErrNotFound),
		errors.Is(err, dealregdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	if strings.HasPrefix(code, "missing_") {
		return strings.TrimPrefix(code, "missing_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
