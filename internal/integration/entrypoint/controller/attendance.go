// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/usecase/attendance"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// AttendanceController handles check-in endpoints.
type AttendanceController struct {
	checkInUseCase *attendance.CheckInUseCase
	listUseCase    *attendance.ListAttendanceUseCase
}

// NewAttendanceController creates a new attendance controller instance.
func NewAttendanceController(
	checkInUseCase *attendance.CheckInUseCase,
	listUseCase *attendance.ListAttendanceUseCase,
) *AttendanceController {
	return &AttendanceController{
		checkInUseCase: checkInUseCase,
		listUseCase:    listUseCase,
	}
}

// CheckIn handles POST /attendance/check-in requests.
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMemberNotFound),
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
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	output, err := c.checkInUseCase.Execute(ctx.Request.Context(), attendance.CheckInInput{
		GymID:    gymID,
		BranchID: branchID,
		MemberID: memberID,
	})
	if err != nil {
		handleAttendanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAttendanceResponse(output.Attendance))
}

// List handles GET /attendance requests.
// Query parameters: branch_id (required), day (YYYY-MM-DD, defaults to today).
func (c *AttendanceController) List(ctx *gin.Context) {
	branchID, err := uuid.Parse(ctx.Query("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return
	}

	input := attendance.ListAttendanceInput{BranchID: branchID}
	if dayStr := ctx.Query("day"); dayStr != "" {
		day, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid day, expected YYYY-MM-DD",
			})
			return
		}
		input.Day = day
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve attendance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAttendanceListResponse(output.Attendances))
}

// handleAttendanceError handles attendance errors and returns appropriate HTTP responses.
func handleAttendanceError(ctx *gin.Context, err error) {
	var attErr *domainerror.AttendanceError
	if errors.As(err, &attErr) {
		status := http.StatusConflict
		if attErr.Code == domainerror.ErrCodeMembershipExpired {
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: attErr.Message,
			Code:  string(attErr.Code),
		})
		return
	}

	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusCodeForMemberError(memberErr.Code), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
