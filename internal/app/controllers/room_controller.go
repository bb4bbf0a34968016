package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/services"
	"github.com/adityavkr/hostelhub/internal/middleware"
)

// RoomController handles room inventory operations
type RoomController struct {
	roomService services.RoomService
	logger      zerolog.Logger
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService, logger zerolog.Logger) *RoomController {
	return &RoomController{
		roomService: roomService,
		logger:      logger,
	}
}

// parseIDParam reads a positive int64 path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" parameter")))
		return 0, false
	}
	return id, true
}

// ListRooms returns the room inventory
// @Summary List all rooms
// @Description Returns every room with live occupied and available bed counts.
// @Tags rooms
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.RoomListResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	resp, err := c.roomService.ListRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetRoomDetails returns one room with its beds
// @Summary Get room details
// @Description Returns a room with all its beds, each annotated with the occupant's name and roll number.
// @Tags rooms
// @Produce json
// @Security ApiKeyAuth
// @Param roomId path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomDetailResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Room not found"
// @Router /rooms/{roomId} [get]
func (c *RoomController) GetRoomDetails(ctx *gin.Context) {
	roomID, ok := parseIDParam(ctx, "roomId")
	if !ok {
		return
	}

	resp, err := c.roomService.GetRoomDetails(ctx.Request.Context(), roomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CreateRoom creates a room with its beds
// @Summary Create a room
// @Description Creates a room and its beds numbered 1..capacity in one transaction. Warden only.
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateRoomRequest true "Room definition"
// @Success 201 {object} dto.APIResponse{data=models.Room}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Room number already exists"
// @Router /warden/rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	room, err := c.roomService.CreateRoom(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: room})
}
