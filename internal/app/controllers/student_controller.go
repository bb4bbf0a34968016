package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/services"
	"github.com/adityavkr/hostelhub/internal/middleware"
)

// StudentController handles the student-facing endpoints
type StudentController struct {
	studentService         services.StudentService
	roomChangeService      services.RoomChangeService
	personalDetailsService services.PersonalDetailsService
	logger                 zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	roomChangeService services.RoomChangeService,
	personalDetailsService services.PersonalDetailsService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:         studentService,
		roomChangeService:      roomChangeService,
		personalDetailsService: personalDetailsService,
		logger:                 logger,
	}
}

// GetMyRoom returns the student's room view
// @Summary Get the student's own room
// @Description Returns the student's room, their bed number and the roommates sharing the room.
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyRoomResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No room assigned"
// @Router /student/my-room [get]
func (c *StudentController) GetMyRoom(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.studentService.GetMyRoom(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// SubmitRoomChangeRequest submits a room change request
// @Summary Request a room change
// @Description Submits a request to move to a specific free bed in another room. The target bed must be free at submission time.
// @Tags student
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateRoomChangeRequest true "Requested room, bed and reason"
// @Success 201 {object} dto.APIResponse{data=models.RoomChangeRequest}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Bed unavailable or already assigned"
// @Router /student/room-change-request [post]
func (c *StudentController) SubmitRoomChangeRequest(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateRoomChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.roomChangeService.Submit(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: request})
}

// SubmitPersonalDetailsRequest submits a personal details update request
// @Summary Request a personal details update
// @Description Submits proposed changes to contact and guardian fields for warden approval. Empty fields mean no change; at most one pending request per student.
// @Tags student
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreatePersonalDetailsRequest true "Proposed changes"
// @Success 201 {object} dto.APIResponse{data=models.PersonalDetailsUpdateRequest}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "A pending request already exists"
// @Router /student/personal-details-update-request [post]
func (c *StudentController) SubmitPersonalDetailsRequest(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreatePersonalDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.personalDetailsService.Submit(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: request})
}

// GetWardenContact returns the warden contact card
// @Summary Get warden contact information
// @Tags student
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.WardenContactResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "No warden account exists"
// @Router /student/warden-contact [get]
func (c *StudentController) GetWardenContact(ctx *gin.Context) {
	resp, err := c.studentService.GetWardenContact(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
