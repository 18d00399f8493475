package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roombook/internal/dto"
	"roombook/internal/models"
	"roombook/internal/repository"
	"roombook/internal/service"
	"roombook/internal/validation"

	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings")
	bookings.GET("", h.ListBookings)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:id", h.GetBooking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	limit, offset, issues := parsePagination(c)

	var filter repository.BookingFilter
	filter.Limit, filter.Offset = limit, offset

	if s := c.QueryParam("room_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n < 1 {
			issues = append(issues, validation.Issue{Field: "room_id", Message: "room_id must be a positive integer"})
		} else {
			id := uint(n)
			filter.RoomID = &id
		}
	}
	filter.From = queryTime(c, "from", &issues)
	filter.To = queryTime(c, "to", &issues)

	if len(issues) > 0 {
		return validationFailed(issues)
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return internal()
	}

	resp := dto.BookingListResponse{
		Data:   make([]dto.BookingResponse, len(bookings)),
		Limit:  limit,
		Offset: offset,
		Count:  len(bookings),
	}
	for i, b := range bookings {
		resp.Data[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		var issues validation.Issues
		if errors.As(err, &issues) {
			return validationFailed(issues)
		}
		return internal()
	}

	start, end, issues := req.Times()
	if len(issues) > 0 {
		return validationFailed(issues)
	}

	booking := &models.Booking{
		RoomID:  req.RoomID,
		Title:   req.Title,
		StartAt: start,
		EndAt:   end,
	}

	if err := h.svc.CreateBooking(c.Request().Context(), booking); err != nil {
		switch {
		case errors.Is(err, service.ErrBookingOverlap):
			return echo.NewHTTPError(http.StatusConflict, dto.ErrorResponse{
				Type:    dto.TypeOverlap,
				Message: "the requested time range overlaps an existing booking for this room",
				Hint:    "pick another interval or room",
			})
		case errors.Is(err, service.ErrRoomNotFound):
			return notFound("room not found")
		default:
			return internal()
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationFailed(validation.Issues{{Field: "id", Message: "id must be a positive integer"}})
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return notFound("booking not found")
		}
		return internal()
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
