package handler

import (
	"net/http"
	"strconv"
	"time"

	"roombook/internal/dto"
	"roombook/internal/validation"

	"github.com/labstack/echo/v4"
)

// parsePagination applies the defaults (limit 50, offset 0) and bounds
// (limit 1..100, offset >= 0); out-of-range values become issues naming
// the offending query field.
func parsePagination(c echo.Context) (limit, offset int, issues validation.Issues) {
	limit, offset = 50, 0

	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			issues = append(issues, validation.Issue{Field: "limit", Message: "limit must be an integer between 1 and 100"})
		} else {
			limit = n
		}
	}

	if s := c.QueryParam("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			issues = append(issues, validation.Issue{Field: "offset", Message: "offset must be a non-negative integer"})
		} else {
			offset = n
		}
	}

	return limit, offset, issues
}

func validationFailed(issues validation.Issues) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{
		Type:    dto.TypeValidation,
		Message: "validation failed",
		Issues:  issues,
	})
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{
		Type:    dto.TypeValidation,
		Message: "invalid request body",
	})
}

func notFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, dto.ErrorResponse{
		Type:    dto.TypeNotFound,
		Message: msg,
	})
}

func internal() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, dto.ErrorResponse{
		Type:    dto.TypeInternal,
		Message: "internal server error",
	})
}

func queryTime(c echo.Context, name string, issues *validation.Issues) *time.Time {
	s := c.QueryParam(name)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		*issues = append(*issues, validation.Issue{Field: name, Message: name + " must be a valid RFC 3339 date-time"})
		return nil
	}
	u := t.UTC()
	return &u
}
