// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/operator"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// OperatorController handles staff account endpoints.
type OperatorController struct {
	createUseCase *operator.CreateOperatorUseCase
	listUseCase   *operator.ListOperatorsUseCase
	deleteUseCase *operator.DeleteOperatorUseCase
}

// NewOperatorController creates a new operator controller instance.
func NewOperatorController(
	createUseCase *operator.CreateOperatorUseCase,
	listUseCase *operator.ListOperatorsUseCase,
	deleteUseCase *operator.DeleteOperatorUseCase,
) *OperatorController {
	return &OperatorController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /operators requests.
func (c *OperatorController) Create(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateOperatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	input := operator.CreateOperatorInput{
		GymID:    gymID,
		BranchID: branchID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleOperatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// List handles GET /operators requests.
func (c *OperatorController) List(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), operator.ListOperatorsInput{GymID: gymID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve operators",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOperatorListResponse(output.Operators))
}

// Delete handles DELETE /operators/:id requests.
func (c *OperatorController) Delete(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	operatorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid operator ID",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), operator.DeleteOperatorInput{
		GymID:      gymID,
		OperatorID: operatorID,
	})
	if err != nil {
		handleOperatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleOperatorError handles operator errors and returns appropriate HTTP
// responses. Operator management reuses auth error codes for account-level
// failures and branch error codes for branch validation.
func handleOperatorError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var branchErr *domainerror.BranchError
	if errors.As(err, &branchErr) {
		ctx.JSON(statusCodeForBranchError(branchErr.Code), dto.ErrorResponse{
			Error: branchErr.Message,
			Code:  string(branchErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
