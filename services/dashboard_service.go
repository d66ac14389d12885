package services

import (
	"insuretrack-backend/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalCustomers   int64 `json:"total_customers"`
	ActivePolicies   int64 `json:"active_policies"`
	UpcomingRenewals int64 `json:"upcoming_renewals"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetStats computes the dashboard counters. active_policies is every policy
// on file; there is no lapsed/cancelled status column to filter on.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Insurance{}).Count(&stats.ActivePolicies).Error; err != nil {
		return nil, err
	}

	today := models.Today()
	thirtyDays := today.AddDays(30)
	if err := s.db.Model(&models.Insurance{}).
		Where("renewal_date BETWEEN ? AND ?", today.Time, thirtyDays.Time).
		Count(&stats.UpcomingRenewals).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
