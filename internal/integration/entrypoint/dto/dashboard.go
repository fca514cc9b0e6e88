// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/gym-manager/backend/internal/domain/entity"
)

// GymDashboardResponse represents the response for the gym dashboard API.
type GymDashboardResponse struct {
	Data GymDashboardData `json:"data"`
}

// GymDashboardData represents the data section of the gym dashboard response.
type GymDashboardData struct {
	Branches []BranchDashboardResponse    `json:"branches"`
	Summary  GymDashboardSummaryResponse  `json:"summary"`
}

// BranchDashboardResponse represents one branch aggregate in the response.
type BranchDashboardResponse struct {
	BranchID      string  `json:"branch_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	ManagerName   string  `json:"manager_name"`
	Status        string  `json:"status"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	MemberCount   int     `json:"member_count"`
	ActiveMembers int     `json:"active_members"`
}

// GymDashboardSummaryResponse represents the gym-wide rollup in the response.
type GymDashboardSummaryResponse struct {
	TotalBranches int     `json:"total_branches"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalProfit   float64 `json:"total_profit"`
	TotalMembers  int     `json:"total_members"`
	ActiveMembers int     `json:"active_members"`
}

// BranchOverviewResponse represents the response for the branch dashboard API.
type BranchOverviewResponse struct {
	Data BranchOverviewData `json:"data"`
}

// BranchOverviewData represents the data section of the branch dashboard response.
type BranchOverviewData struct {
	BranchDashboardResponse
	NewMembersToday    int     `json:"new_members_today"`
	NewMembersThisWeek int     `json:"new_members_this_week"`
	TodayIncome        float64 `json:"today_income"`
	TodayExpenses      float64 `json:"today_expenses"`
}

// toBranchDashboardResponse converts one branch aggregate to its DTO.
func toBranchDashboardResponse(data entity.BranchDashboardData) BranchDashboardResponse {
	totalIncome, _ := data.TotalIncome.Float64()
	totalExpenses, _ := data.TotalExpenses.Float64()
	netProfit, _ := data.NetProfit.Float64()
	return BranchDashboardResponse{
		BranchID:      data.BranchID.String(),
		Name:          data.Name,
		Address:       data.Address,
		Phone:         data.Phone,
		ManagerName:   data.ManagerName,
		Status:        string(data.Status),
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		MemberCount:   data.MemberCount,
		ActiveMembers: data.ActiveMembers,
	}
}

// ToGymDashboardResponse converts a GymDashboard to a GymDashboardResponse DTO.
func ToGymDashboardResponse(dashboard *entity.GymDashboard) GymDashboardResponse {
	branches := make([]BranchDashboardResponse, len(dashboard.Branches))
	for i, b := range dashboard.Branches {
		branches[i] = toBranchDashboardResponse(b)
	}

	totalIncome, _ := dashboard.Summary.TotalIncome.Float64()
	totalExpenses, _ := dashboard.Summary.TotalExpenses.Float64()
	totalProfit, _ := dashboard.Summary.TotalProfit.Float64()

	return GymDashboardResponse{
		Data: GymDashboardData{
			Branches: branches,
			Summary: GymDashboardSummaryResponse{
				TotalBranches: dashboard.Summary.TotalBranches,
				TotalIncome:   totalIncome,
				TotalExpenses: totalExpenses,
				TotalProfit:   totalProfit,
				TotalMembers:  dashboard.Summary.TotalMembers,
				ActiveMembers: dashboard.Summary.ActiveMembers,
			},
		},
	}
}

// ToBranchOverviewResponse converts a BranchOverview to a BranchOverviewResponse DTO.
func ToBranchOverviewResponse(overview *entity.BranchOverview) BranchOverviewResponse {
	todayIncome, _ := overview.TodayIncome.Float64()
	todayExpenses, _ := overview.TodayExpenses.Float64()
	return BranchOverviewResponse{
		Data: BranchOverviewData{
			BranchDashboardResponse: toBranchDashboardResponse(overview.BranchDashboardData),
			NewMembersToday:         overview.NewMembersToday,
			NewMembersThisWeek:      overview.NewMembersThisWeek,
			TodayIncome:             todayIncome,
			TodayExpenses:           todayExpenses,
		},
	}
}
