// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/enquiry"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// EnquiryController handles lead endpoints.
type EnquiryController struct {
	createUseCase *enquiry.CreateEnquiryUseCase
	listUseCase   *enquiry.ListEnquiriesUseCase
	updateUseCase *enquiry.UpdateEnquiryStatusUseCase
}

// NewEnquiryController creates a new enquiry controller instance.
func NewEnquiryController(
	createUseCase *enquiry.CreateEnquiryUseCase,
	listUseCase *enquiry.ListEnquiriesUseCase,
	updateUseCase *enquiry.UpdateEnquiryStatusUseCase,
) *EnquiryController {
	return &EnquiryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /enquiries requests.
func (c *EnquiryController) Create(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEnquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEnquiryNameRequired),
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), enquiry.CreateEnquiryInput{
		GymID:    gymID,
		BranchID: branchID,
		Name:     req.Name,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		handleEnquiryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEnquiryResponse(output.Enquiry))
}

// List handles GET /enquiries requests.
// Query parameters: branch_id (required).
func (c *EnquiryController) List(ctx *gin.Context) {
	branchID, err := uuid.Parse(ctx.Query("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), enquiry.ListEnquiriesInput{BranchID: branchID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve enquiries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnquiryListResponse(output.Enquiries))
}

// UpdateStatus handles PUT /enquiries/:id/status requests.
func (c *EnquiryController) UpdateStatus(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	enquiryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid enquiry ID",
			Code:  string(domainerror.ErrCodeEnquiryNotFound),
		})
		return
	}

	var req dto.UpdateEnquiryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidEnquiryStatus),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), enquiry.UpdateEnquiryStatusInput{
		GymID:     gymID,
		EnquiryID: enquiryID,
		Status:    entity.EnquiryStatus(req.Status),
	})
	if err != nil {
		handleEnquiryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnquiryResponse(output.Enquiry))
}

// handleEnquiryError handles enquiry errors and returns appropriate HTTP responses.
func handleEnquiryError(ctx *gin.Context, err error) {
	var enquiryErr *domainerror.EnquiryError
	if errors.As(err, &enquiryErr) {
		status := http.StatusBadRequest
		if enquiryErr.Code == domainerror.ErrCodeEnquiryNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: enquiryErr.Message,
			Code:  string(enquiryErr.Code),
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
