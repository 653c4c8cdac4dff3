package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// ErrorResponse writes an error response to the client. Domain error codes
// map to HTTP status codes; everything the service serves is JSON.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	op := domain.ErrorOp(err)

	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, op, status)

	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.EGONE:
		return http.StatusGone // 410
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests // 429
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway // 502
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// logError logs at a level matching the severity of the failure.
func logError(logger *slog.Logger, r *http.Request, err error, code, op string, status int) {
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"code", code,
	}
	if op != "" {
		attrs = append(attrs, "op", op)
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Err != nil {
		attrs = append(attrs, "error", domainErr.Err.Error())
	} else {
		attrs = append(attrs, "error", err.Error())
	}

	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Warn("request rejected", attrs...)
	}
}

// NotFoundResponse writes a JSON 404.
func NotFoundResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	ErrorResponse(w, r, logger, domain.NotFound("http", "resource", r.URL.Path))
}
