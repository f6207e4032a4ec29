package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// HTTPError is an error that renders as an ErrorResponse.
type HTTPError struct {
	ErrorResponse
}

func (e *HTTPError) Error() string {
	if e.Field != "" {
		return e.Title + ": " + e.Field + ": " + e.Detail
	}
	return e.Title
}

// NewHTTPError returns an HTTPError with no field detail.
func NewHTTPError(status int, title string) *HTTPError {
	return &HTTPError{ErrorResponse{Status: status, Title: title}}
}

// NewValidationError reports a problem with one body field.
func NewValidationError(field, detail string) *HTTPError {
	return &HTTPError{ErrorResponse{
		Status: http.StatusBadRequest,
		Title:  "Invalid request",
		Field:  field,
		Detail: detail,
	}}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		httpErr *HTTPError
		echoErr *echo.HTTPError
		body    ErrorResponse
	)
	switch {
	case errors.As(err, &httpErr):
		body = httpErr.ErrorResponse
	case errors.As(err, &echoErr):
		body = ErrorResponse{Status: echoErr.Code, Title: http.StatusText(echoErr.Code)}
	default:
		body = ErrorResponse{Status: http.StatusInternalServerError, Title: http.StatusText(http.StatusInternalServerError)}
	}
	if body.Status >= http.StatusInternalServerError {
		s.Logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(body.Status)
	} else {
		err = c.JSON(body.Status, body)
	}
	if err != nil {
		s.Logger.Error().Err(err).Msg("failed to write error response")
	}
}
