package middleware

import (
	"errors"
	"net/http"

	"dcn-community/internal/domain"
	"dcn-community/internal/logger"
	"dcn-community/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalErrorMessage = "Terjadi kesalahan pada server"

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			body := errorBody(domain.CodeValidation, validationMessage(validationErrs), http.StatusBadRequest)
			body["errors"] = validationErrs
			return c.Status(http.StatusBadRequest).JSON(body)
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			message := domainErr.Message
			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.String("path", c.Path()),
					zap.Error(domainErr.Cause),
				)
				observability.CaptureRequestErr(err, c.Method(), c.Path())
				message = internalErrorMessage
			} else {
				log.Debug("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", statusCode),
				)
			}

			body := errorBody(domainErr.Code, message, statusCode)
			for k, v := range domainErr.Context {
				if _, reserved := body[k]; !reserved {
					body[k] = v
				}
			}
			return c.Status(statusCode).JSON(body)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(errorBody("HTTP_ERROR", fiberErr.Message, fiberErr.Code))
		}

		// Handle unknown errors
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		observability.CaptureRequestErr(err, c.Method(), c.Path())

		return c.Status(http.StatusInternalServerError).JSON(
			errorBody(domain.CodeInternal, internalErrorMessage, http.StatusInternalServerError))
	}
}

// errorBody builds the JSON error envelope. "error" mirrors "message" for
// clients that read either key.
func errorBody(code domain.ErrorCode, message string, status int) fiber.Map {
	return fiber.Map{
		"code":    string(code),
		"message": message,
		"error":   message,
		"status":  status,
	}
}

func validationMessage(errs domain.ValidationErrors) string {
	if len(errs) == 1 {
		return errs[0].Message
	}
	return "Data yang dikirim tidak valid"
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange, domain.CodeConflict,
		domain.CodeCodeInactive, domain.CodeCodeExpired, domain.CodeQuotaExhausted,
		domain.CodeAlreadyClaimed:
		return http.StatusBadRequest
	case domain.CodeExpired:
		return http.StatusGone
	case domain.CodeForbidden, domain.CodeAlreadySubmitted, domain.CodeDuplicateSubmission,
		domain.CodeNotEligible:
		return http.StatusForbidden
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusForError returns the status ErrorHandler will write for err.
func statusForError(err error) int {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return mapDomainErrorToHTTPStatus(domainErr)
	}
	return http.StatusInternalServerError
}
