// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/dashboard"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	gymUseCase    *dashboard.GetGymDashboardUseCase
	branchUseCase *dashboard.GetBranchDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	gymUseCase *dashboard.GetGymDashboardUseCase,
	branchUseCase *dashboard.GetBranchDashboardUseCase,
) *DashboardController {
	return &DashboardController{
		gymUseCase:    gymUseCase,
		branchUseCase: branchUseCase,
	}
}

// GetGymDashboard handles GET /dashboard/gym requests. Owner only; the gym
// is taken from the token claims.
func (c *DashboardController) GetGymDashboard(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.gymUseCase.Execute(ctx.Request.Context(), dashboard.GetGymDashboardInput{GymID: gymID})
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGymDashboardResponse(output.Dashboard))
}

// GetBranchDashboard handles GET /dashboard/branch requests. Operators see
// their own branch; owners pass an explicit branch_id query parameter.
func (c *DashboardController) GetBranchDashboard(ctx *gin.Context) {
	role, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var branchID uuid.UUID
	if role == entity.RoleOwner {
		parsed, err := uuid.Parse(ctx.Query("branch_id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "branch_id query parameter is required",
				Code:  string(domainerror.ErrCodeMissingBranchID),
			})
			return
		}
		branchID = parsed
	} else {
		claimed, ok := middleware.GetBranchIDFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Account has no branch assignment",
				Code:  string(domainerror.ErrCodeForbiddenRole),
			})
			return
		}
		branchID = claimed
	}

	output, err := c.branchUseCase.Execute(ctx.Request.Context(), dashboard.GetBranchDashboardInput{BranchID: branchID})
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchOverviewResponse(output.Overview))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusInternalServerError
		switch dashErr.Code {
		case domainerror.ErrCodeMissingGymID, domainerror.ErrCodeMissingBranchID:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBranchNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Branch not found",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
