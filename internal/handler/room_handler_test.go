package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roombook/internal/dto"
	"roombook/internal/models"
	"roombook/internal/service"
	"roombook/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock RoomService ---

type mockRoomService struct {
	createFn func(ctx context.Context, room *models.Room) error
	listFn   func(ctx context.Context, limit, offset int) ([]models.Room, error)
	getFn    func(ctx context.Context, id uint) (*models.Room, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockRoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	return m.createFn(ctx, room)
}
func (m *mockRoomService) ListRooms(ctx context.Context, limit, offset int) ([]models.Room, error) {
	return m.listFn(ctx, limit, offset)
}
func (m *mockRoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	return m.getFn(ctx, id)
}
func (m *mockRoomService) DeleteRoom(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func errorResponse(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	body, ok := he.Message.(dto.ErrorResponse)
	require.True(t, ok, "expected dto.ErrorResponse message, got %T", he.Message)
	return he.Code, body
}

// --- Tests ---

func TestCreateRoom_Handler_Success(t *testing.T) {
	svc := &mockRoomService{
		createFn: func(ctx context.Context, room *models.Room) error {
			room.ID = 1
			return nil
		},
	}

	e := newEcho()
	body := `{"name":"Orion","capacity":8,"description":"Third floor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(svc)
	err := h.CreateRoom(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RoomResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Orion", resp.Name)
	assert.Equal(t, 8, resp.Capacity)
}

func TestCreateRoom_Handler_ZeroCapacity(t *testing.T) {
	e := newEcho()
	body := `{"name":"Orion","capacity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(&mockRoomService{})
	err := h.CreateRoom(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, dto.TypeValidation, resp.Type)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "capacity", resp.Issues[0].Field)
}

func TestCreateRoom_Handler_EmptyName(t *testing.T) {
	e := newEcho()
	body := `{"name":"","capacity":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(&mockRoomService{})
	err := h.CreateRoom(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, dto.TypeValidation, resp.Type)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "name", resp.Issues[0].Field)
}

func TestCreateRoom_Handler_NameTooLong(t *testing.T) {
	e := newEcho()
	body := `{"name":"` + strings.Repeat("a", 101) + `","capacity":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(&mockRoomService{})
	err := h.CreateRoom(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "name", resp.Issues[0].Field)
}

func TestListRooms_Handler_Defaults(t *testing.T) {
	svc := &mockRoomService{
		listFn: func(ctx context.Context, limit, offset int) ([]models.Room, error) {
			assert.Equal(t, 50, limit)
			assert.Equal(t, 0, offset)
			return []models.Room{
				{ID: 1, Name: "Orion", Capacity: 8},
				{ID: 2, Name: "Lyra", Capacity: 4},
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(svc)
	err := h.ListRooms(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RoomListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 50, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, 2, resp.Count)
}

func TestListRooms_Handler_LimitOutOfRange(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms?limit=101", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(&mockRoomService{})
	err := h.ListRooms(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "limit", resp.Issues[0].Field)
}

func TestListRooms_Handler_NegativeOffset(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms?offset=-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRoomHandler(&mockRoomService{})
	err := h.ListRooms(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "offset", resp.Issues[0].Field)
}

func TestGetRoom_Handler_NotFound(t *testing.T) {
	svc := &mockRoomService{
		getFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return nil, service.ErrRoomNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewRoomHandler(svc)
	err := h.GetRoom(c)

	code, resp := errorResponse(t, err)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, dto.TypeNotFound, resp.Type)
}

func TestDeleteRoom_Handler_Success(t *testing.T) {
	svc := &mockRoomService{
		deleteFn: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			return nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/rooms/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewRoomHandler(svc)
	err := h.DeleteRoom(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
