package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/services"
	"github.com/adityavkr/hostelhub/internal/middleware"
)

// FoodMenuController handles weekly menu operations
type FoodMenuController struct {
	menuService services.FoodMenuService
	logger      zerolog.Logger
}

// NewFoodMenuController creates a new FoodMenuController
func NewFoodMenuController(menuService services.FoodMenuService, logger zerolog.Logger) *FoodMenuController {
	return &FoodMenuController{
		menuService: menuService,
		logger:      logger,
	}
}

// GetWeeklyMenu returns the weekly menu
// @Summary Get the weekly food menu
// @Description Returns the menu ordered Monday through Sunday with breakfast before lunch before dinner.
// @Tags food-menu
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.FoodMenuListResponse}
// @Router /food-menu [get]
func (c *FoodMenuController) GetWeeklyMenu(ctx *gin.Context) {
	resp, err := c.menuService.GetWeeklyMenu(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CreateEntry adds a menu entry
// @Summary Create a food menu entry
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateFoodMenuRequest true "Day, meal and items"
// @Success 201 {object} dto.APIResponse{data=models.FoodMenu}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Entry for this day and meal exists"
// @Router /warden/food-menu [post]
func (c *FoodMenuController) CreateEntry(ctx *gin.Context) {
	var req dto.CreateFoodMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.menuService.CreateEntry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: entry})
}

// UpdateEntry updates a menu entry
// @Summary Update a food menu entry
// @Tags warden
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Menu entry ID"
// @Param request body dto.UpdateFoodMenuRequest true "Day, meal and items"
// @Success 200 {object} dto.APIResponse{data=models.FoodMenu}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Entry not found"
// @Router /warden/food-menu/{id} [put]
func (c *FoodMenuController) UpdateEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFoodMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.menuService.UpdateEntry(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entry})
}

// DeleteEntry removes a menu entry
// @Summary Delete a food menu entry
// @Tags warden
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Menu entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Entry not found"
// @Router /warden/food-menu/{id} [delete]
func (c *FoodMenuController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.menuService.DeleteEntry(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Menu entry deleted"}})
}
