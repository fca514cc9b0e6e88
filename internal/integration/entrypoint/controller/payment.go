// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/application/usecase/payment"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/entrypoint/dto"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// PaymentController handles income and expense endpoints.
type PaymentController struct {
	recordPaymentUseCase *payment.RecordPaymentUseCase
	recordExpenseUseCase *payment.RecordExpenseUseCase
	listPaymentsUseCase  *payment.ListPaymentsUseCase
	listExpensesUseCase  *payment.ListExpensesUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	recordPaymentUseCase *payment.RecordPaymentUseCase,
	recordExpenseUseCase *payment.RecordExpenseUseCase,
	listPaymentsUseCase *payment.ListPaymentsUseCase,
	listExpensesUseCase *payment.ListExpensesUseCase,
) *PaymentController {
	return &PaymentController{
		recordPaymentUseCase: recordPaymentUseCase,
		recordExpenseUseCase: recordExpenseUseCase,
		listPaymentsUseCase:  listPaymentsUseCase,
		listExpensesUseCase:  listExpensesUseCase,
	}
}

// RecordPayment handles POST /payments requests.
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNonPositiveAmount),
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

	memberID, ok := parseOptionalUUID(ctx, req.MemberID, string(domainerror.ErrCodeMemberNotFound))
	if !ok {
		return
	}

	input := payment.RecordPaymentInput{
		GymID:    gymID,
		BranchID: branchID,
		MemberID: memberID,
		Amount:   decimal.NewFromFloat(req.Amount),
		Method:   entity.PaymentMethod(req.Method),
		Note:     req.Note,
	}
	if req.PaidAt != nil {
		input.PaidAt = *req.PaidAt
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// RecordExpense handles POST /expenses requests.
func (c *PaymentController) RecordExpense(ctx *gin.Context) {
	gymID, ok := middleware.GetGymIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNonPositiveAmount),
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

	input := payment.RecordExpenseInput{
		GymID:    gymID,
		BranchID: branchID,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: req.Category,
		Note:     req.Note,
	}
	if req.SpentAt != nil {
		input.SpentAt = *req.SpentAt
	}

	output, err := c.recordExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// ListPayments handles GET /payments requests.
// Query parameters: branch_id (required), from, to (RFC 3339 timestamps).
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	branchID, from, to, ok := parseListWindow(ctx)
	if !ok {
		return
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{
		BranchID: branchID,
		From:     from,
		To:       to,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve payments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// ListExpenses handles GET /expenses requests.
func (c *PaymentController) ListExpenses(ctx *gin.Context) {
	branchID, from, to, ok := parseListWindow(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), payment.ListExpensesInput{
		BranchID: branchID,
		From:     from,
		To:       to,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// parseListWindow parses the branch and time window query parameters shared
// by the payment and expense listings. Zero times fall back to the use case
// defaults.
func parseListWindow(ctx *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	branchID, err := uuid.Parse(ctx.Query("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid branch ID",
			Code:  string(domainerror.ErrCodeBranchNotFound),
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	var from, to time.Time
	if fromStr := ctx.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err == nil {
			from = parsed
		}
	}
	if toStr := ctx.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err == nil {
			to = parsed
		}
	}

	return branchID, from, to, true
}

// handlePaymentError handles payment errors and returns appropriate HTTP responses.
func handlePaymentError(ctx *gin.Context, err error) {
	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
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
