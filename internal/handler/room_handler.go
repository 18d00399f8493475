package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roombook/internal/dto"
	"roombook/internal/models"
	"roombook/internal/service"
	"roombook/internal/validation"

	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("", h.ListRooms)
	rooms.POST("", h.CreateRoom)
	rooms.GET("/:id", h.GetRoom)
	rooms.DELETE("/:id", h.DeleteRoom)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	limit, offset, issues := parsePagination(c)
	if len(issues) > 0 {
		return validationFailed(issues)
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), limit, offset)
	if err != nil {
		return internal()
	}

	resp := dto.RoomListResponse{
		Data:   make([]dto.RoomResponse, len(rooms)),
		Limit:  limit,
		Offset: offset,
		Count:  len(rooms),
	}
	for i, r := range rooms {
		resp.Data[i] = dto.ToRoomResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
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

	room := &models.Room{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return internal()
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationFailed(validation.Issues{{Field: "id", Message: "id must be a positive integer"}})
	}

	room, err := h.svc.GetRoom(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return notFound("room not found")
		}
		return internal()
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return validationFailed(validation.Issues{{Field: "id", Message: "id must be a positive integer"}})
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return notFound("room not found")
		}
		return internal()
	}

	return c.NoContent(http.StatusNoContent)
}
