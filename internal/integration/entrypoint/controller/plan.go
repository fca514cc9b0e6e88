// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/application/usecase/plan"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// PlanController handles membership plan endpoints.
type PlanController struct {
	createUseCase *plan.CreatePlanUseCase
	listUseCase   *plan.ListPlansUseCase
	updateUseCase *plan.UpdatePlanUseCase
	deleteUseCase *plan.DeletePlanUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	createUseCase *plan.CreatePlanUseCase,
	listUseCase *plan.ListPlansUseCase,
	updateUseCase *plan.UpdatePlanUseCase,
	deleteUseCase *plan.DeletePlanUseCase,
) *PlanController {
	return &PlanController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /plans requests.
func (c *PlanController) Create(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePlanNameRequired),
		})
		return
	}

	input := plan.CreatePlanInput{
		GymID:        gymID,
		Name:         req.Name,
		Price:        decimal.NewFromFloat(req.Price),
		DurationDays: req.DurationDays,
		Features:     req.Features,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlanResponse(output.Plan))
}

// List handles GET /plans requests.
func (c *PlanController) List(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), plan.ListPlansInput{GymID: gymID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve plans",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(output.Plans))
}

// Update handles PUT /plans/:id requests.
func (c *PlanController) Update(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID",
			Code:  string(domainerror.ErrCodePlanMissing),
		})
		return
	}

	var req dto.UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePlanNameRequired),
		})
		return
	}

	input := plan.UpdatePlanInput{
		GymID:        gymID,
		PlanID:       planID,
		Name:         req.Name,
		DurationDays: req.DurationDays,
		Features:     req.Features,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output.Plan))
}

// Delete handles DELETE /plans/:id requests.
func (c *PlanController) Delete(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID",
			Code:  string(domainerror.ErrCodePlanMissing),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), plan.DeletePlanInput{
		GymID:  gymID,
		PlanID: planID,
	})
	if err != nil {
		handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
func handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		ctx.JSON(statusCodeForPlanError(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForPlanError maps plan error codes to HTTP status codes.
func statusCodeForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNameExists:
		return http.StatusConflict
	case domainerror.ErrCodePlanNameRequired,
		domainerror.ErrCodeInvalidPlanDuration,
		domainerror.ErrCodeNegativePlanPrice:
		return http.StatusBadRequest
	case domainerror.ErrCodePlanMissing:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
