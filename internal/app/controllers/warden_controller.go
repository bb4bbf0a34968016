package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/services"
	"github.com/adityavkr/hostelhub/internal/middleware"
)

// WardenController handles student administration and request processing
type WardenController struct {
	studentService         services.StudentService
	roomChangeService      services.RoomChangeService
	personalDetailsService services.PersonalDetailsService
	exportService          services.ExportService
	logger                 zerolog.Logger
}

// NewWardenController creates a new WardenController
func NewWardenController(
	studentService services.StudentService,
	roomChangeService services.RoomChangeService,
	personalDetailsService services.PersonalDetailsService,
	exportService services.ExportService,
	logger zerolog.Logger,
) *WardenController {
	return &WardenController{
		studentService:         studentService,
		roomChangeService:      roomChangeService,
		personalDetailsService: personalDetailsService,
		exportService:          exportService,
		logger:                 logger,
	}
}

// statusFilter reads the optional ?status= query parameter.
func statusFilter(ctx *gin.Context) (models.RequestStatus, bool) {
	status := models.RequestStatus(ctx.Query("status"))
	if status != "" && status != models.RequestPending && status != models.RequestApproved && status != models.RequestRejected {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "status must be pending, approved or rejected")))
		return "", false
	}
	return status, true
}

// CreateStudent registers a new student
// @Summary Create a student account
// @Description Registers a student with the roll number as username. The generated 8-character password is returned exactly once.
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateStudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid phone or payload"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Roll number, aadhaar or phone already exists"
// @Router /warden/create-student [post]
func (c *WardenController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// AssignRoom places a student in a bed
// @Summary Assign a student to a bed
// @Description Assigns the student identified by roll number to a specific bed. Fails if the student already holds a bed or the bed is taken.
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AssignRoomRequest true "Roll number, room and bed"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Student, room or bed not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Bed taken or student already assigned"
// @Router /warden/assign-room [post]
func (c *WardenController) AssignRoom(ctx *gin.Context) {
	var req dto.AssignRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.studentService.AssignRoom(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Room assigned successfully"}})
}

// ListStudents returns the roster
// @Summary List all students
// @Description Returns every student with their room assignment, ordered by roll number.
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /warden/students [get]
func (c *WardenController) ListStudents(ctx *gin.Context) {
	resp, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ExportStudents streams the roster as XLSX
// @Summary Export the student roster
// @Description Downloads the full roster with room assignments as an Excel workbook.
// @Tags warden
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Router /warden/students/export [get]
func (c *WardenController) ExportStudents(ctx *gin.Context) {
	buf, filename, err := c.exportService.StudentRosterXLSX(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// GetStudent returns one student
// @Summary Get a student by ID
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentWithRoomResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Student not found"
// @Router /warden/students/{id} [get]
func (c *WardenController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// UpdateStudent applies a partial profile update
// @Summary Update a student's profile
// @Description Applies a partial update; omitted fields are left unchanged.
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Student not found"
// @Router /warden/students/{id} [put]
func (c *WardenController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// DeleteStudent removes a student account
// @Summary Delete a student
// @Description Deletes the account, releases the bed and removes the student's requests in one transaction.
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Student not found"
// @Router /warden/students/{id} [delete]
func (c *WardenController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Student deleted successfully"}})
}

// ListRoomChangeRequests returns the request queue
// @Summary List room change requests
// @Description Returns requests newest first, enriched with student and room names. Filter with ?status=.
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {object} dto.APIResponse{data=dto.RoomChangeRequestListResponse}
// @Router /warden/room-change-requests [get]
func (c *WardenController) ListRoomChangeRequests(ctx *gin.Context) {
	status, ok := statusFilter(ctx)
	if !ok {
		return
	}

	resp, err := c.roomChangeService.List(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ApproveRoomChange approves a room change request
// @Summary Approve a room change request
// @Description Re-checks bed availability, moves the student and closes the request as one transaction.
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Request not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Bed no longer available or already processed"
// @Router /warden/room-change-requests/{id}/approve [put]
func (c *WardenController) ApproveRoomChange(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	wardenUsername, _ := middleware.CurrentUsername(ctx)

	if err := c.roomChangeService.Approve(ctx.Request.Context(), id, wardenUsername); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Request approved"}})
}

// RejectRoomChange rejects a room change request
// @Summary Reject a room change request
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /warden/room-change-requests/{id}/reject [put]
func (c *WardenController) RejectRoomChange(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	wardenUsername, _ := middleware.CurrentUsername(ctx)

	if err := c.roomChangeService.Reject(ctx.Request.Context(), id, wardenUsername); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Request rejected"}})
}

// ListPersonalDetailsRequests returns the personal details queue
// @Summary List personal details update requests
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {object} dto.APIResponse{data=dto.PersonalDetailsRequestListResponse}
// @Router /warden/personal-details-update-requests [get]
func (c *WardenController) ListPersonalDetailsRequests(ctx *gin.Context) {
	status, ok := statusFilter(ctx)
	if !ok {
		return
	}

	resp, err := c.personalDetailsService.List(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ApprovePersonalDetails approves a personal details update
// @Summary Approve a personal details update request
// @Description Copies the non-empty proposed fields onto the student record and closes the request.
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Request ID"
// @Param request body dto.ProcessRequestRequest false "Optional comment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /warden/personal-details-update-requests/{id}/approve [put]
func (c *WardenController) ApprovePersonalDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProcessRequestRequest
	// Body is optional for approvals
	_ = ctx.ShouldBindJSON(&req)

	wardenUsername, _ := middleware.CurrentUsername(ctx)

	if err := c.personalDetailsService.Approve(ctx.Request.Context(), id, req.Comments, wardenUsername); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Request approved"}})
}

// RejectPersonalDetails rejects a personal details update
// @Summary Reject a personal details update request
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Request ID"
// @Param request body dto.ProcessRequestRequest false "Optional comment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /warden/personal-details-update-requests/{id}/reject [put]
func (c *WardenController) RejectPersonalDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProcessRequestRequest
	_ = ctx.ShouldBindJSON(&req)

	wardenUsername, _ := middleware.CurrentUsername(ctx)

	if err := c.personalDetailsService.Reject(ctx.Request.Context(), id, req.Comments, wardenUsername); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Request rejected"}})
}
