package middleware

import (
	"net/http"

	"roombook/internal/dto"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a dto.ErrorResponse. Handlers attach
// a fully-formed ErrorResponse to their echo.HTTPError; anything else
// (router 404s, panics recovered upstream) gets a generic envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := dto.ErrorResponse{Type: dto.TypeInternal, Message: "internal server error"}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case dto.ErrorResponse:
			body = m
		case string:
			body = dto.ErrorResponse{Type: typeForStatus(code), Message: m}
		}
	}

	_ = c.JSON(code, body)
}

func typeForStatus(code int) string {
	switch {
	case code == http.StatusNotFound:
		return dto.TypeNotFound
	case code == http.StatusConflict:
		return dto.TypeOverlap
	case code >= 400 && code < 500:
		return dto.TypeValidation
	default:
		return dto.TypeInternal
	}
}
