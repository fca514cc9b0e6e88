// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/branch"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// BranchController handles branch endpoints.
type BranchController struct {
	createUseCase *branch.CreateBranchUseCase
	listUseCase   *branch.ListBranchesUseCase
	updateUseCase *branch.UpdateBranchUseCase
	deleteUseCase *branch.DeleteBranchUseCase
}

// NewBranchController creates a new branch controller instance.
func NewBranchController(
	createUseCase *branch.CreateBranchUseCase,
	listUseCase *branch.ListBranchesUseCase,
	updateUseCase *branch.UpdateBranchUseCase,
	deleteUseCase *branch.DeleteBranchUseCase,
) *BranchController {
	return &BranchController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /branches requests.
func (c *BranchController) Create(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBranchNameRequired),
		})
		return
	}

	input := branch.CreateBranchInput{
		GymID:       gymID,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		ManagerName: req.ManagerName,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBranchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(output.Branch))
}

// List handles GET /branches requests.
func (c *BranchController) List(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), branch.ListBranchesInput{GymID: gymID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve branches",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(output.Branches))
}

// Update handles PUT /branches/:id requests.
func (c *BranchController) Update(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	branchID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	var req dto.UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBranchStatus),
		})
		return
	}

	input := branch.UpdateBranchInput{
		GymID:       gymID,
		BranchID:    branchID,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		ManagerName: req.ManagerName,
	}
	if req.Status != nil {
		status := entity.BranchStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBranchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(output.Branch))
}

// Delete handles DELETE /branches/:id requests.
func (c *BranchController) Delete(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	branchID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), branch.DeleteBranchInput{
		GymID:    gymID,
		BranchID: branchID,
	})
	if err != nil {
		handleBranchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleBranchError handles branch errors and returns appropriate HTTP responses.
func handleBranchError(ctx *gin.Context, err error) {
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

// statusCodeForBranchError maps branch error codes to HTTP status codes.
func statusCodeForBranchError(code domainerror.BranchErrorCode) int {
	switch code {
	case domainerror.ErrCodeBranchNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeBranchNameRequired,
		domainerror.ErrCodeInvalidBranchStatus:
		return http.StatusBadRequest
	case domainerror.ErrCodeBranchNotFound,
		domainerror.ErrCodeBranchNotInGym:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
