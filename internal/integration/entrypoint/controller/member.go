// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/member"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// MemberController handles member endpoints.
type MemberController struct {
	registerUseCase *member.RegisterMemberUseCase
	listUseCase     *member.ListMembersUseCase
	updateUseCase   *member.UpdateMemberUseCase
	deleteUseCase   *member.DeleteMemberUseCase
}

// NewMemberController creates a new member controller instance.
func NewMemberController(
	registerUseCase *member.RegisterMemberUseCase,
	listUseCase *member.ListMembersUseCase,
	updateUseCase *member.UpdateMemberUseCase,
	deleteUseCase *member.DeleteMemberUseCase,
) *MemberController {
	return &MemberController{
		registerUseCase: registerUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Register handles POST /members requests.
func (c *MemberController) Register(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RegisterMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMemberNameRequired),
		})
		return
	}

	branchID := uuid.Nil
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid branch ID",
				Code:  string(domainerror.ErrCodeBranchNotFound),
			})
			return
		}
		branchID = id
	}

	planID, ok := parseOptionalUUID(ctx, req.PlanID, string(domainerror.ErrCodePlanMissing))
	if !ok {
		return
	}

	input := member.RegisterMemberInput{
		GymID:               gymID,
		BranchID:            branchID,
		PlanID:              planID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		MembershipStartDate: req.MembershipStartDate,
		MembershipEndDate:   req.MembershipEndDate,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(output.Member))
}

// List handles GET /members requests. A branch_id query parameter narrows
// the listing to one branch.
func (c *MemberController) List(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := member.ListMembersInput{GymID: gymID}
	if branchIDStr := ctx.Query("branch_id"); branchIDStr != "" {
		branchID, err := uuid.Parse(branchIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid branch ID",
				Code:  string(domainerror.ErrCodeBranchNotFound),
			})
			return
		}
		input.BranchID = &branchID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve members",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Members))
}

// Update handles PUT /members/:id requests.
func (c *MemberController) Update(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMemberNameRequired),
		})
		return
	}

	branchID, ok := parseOptionalUUID(ctx, req.BranchID, string(domainerror.ErrCodeBranchNotFound))
	if !ok {
		return
	}
	planID, ok := parseOptionalUUID(ctx, req.PlanID, string(domainerror.ErrCodePlanMissing))
	if !ok {
		return
	}

	input := member.UpdateMemberInput{
		GymID:               gymID,
		MemberID:            memberID,
		BranchID:            branchID,
		PlanID:              planID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		MembershipStartDate: req.MembershipStartDate,
		MembershipEndDate:   req.MembershipEndDate,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(output.Member))
}

// Delete handles DELETE /members/:id requests.
func (c *MemberController) Delete(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), member.DeleteMemberInput{
		GymID:    gymID,
		MemberID: memberID,
	})
	if err != nil {
		handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// parseOptionalUUID parses an optional UUID string from a request. On a
// malformed value it writes a 400 response and returns false.
func parseOptionalUUID(ctx *gin.Context, value *string, errCode string) (*uuid.UUID, bool) {
	if value == nil {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid identifier",
			Code:  errCode,
		})
		return nil, false
	}
	return &id, true
}

// handleMemberError handles member errors and returns appropriate HTTP responses.
func handleMemberError(ctx *gin.Context, err error) {
	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusCodeForMemberError(memberErr.Code), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
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

// statusCodeForMemberError maps member error codes to HTTP status codes.
func statusCodeForMemberError(code domainerror.MemberErrorCode) int {
	switch code {
	case domainerror.ErrCodeMemberNameRequired,
		domainerror.ErrCodeInvalidMembershipWindow:
		return http.StatusBadRequest
	case domainerror.ErrCodeMemberNotFound,
		domainerror.ErrCodePlanNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
