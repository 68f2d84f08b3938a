package repository

import (
	"time"

	"monateg/internal/domain"
	"monateg/internal/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalUsers         int64   `json:"total_users"`
	ActiveUsers        int64   `json:"active_users"`
	TotalEarnings      float64 `json:"total_earnings"`
	TodayEarnings      float64 `json:"today_earnings"`
	TotalWithdrawals   float64 `json:"total_withdrawals"`
	PendingWithdrawals float64 `json:"pending_withdrawals"`
	LiveConnections    int     `json:"live_connections"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetDashboardStats aggregates the dashboard counters. Active users are
// those that logged in within the last 7 days; today's earnings are rows
// dated since local midnight.
func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	r.db.Model(&models.User{}).Count(&s.TotalUsers)

	weekAgo := time.Now().AddDate(0, 0, -7)
	r.db.Model(&models.User{}).Where("last_login_date > ?", weekAgo).Count(&s.ActiveUsers)

	var sum struct{ Total float64 }
	r.db.Model(&models.Earning{}).Select("COALESCE(SUM(amount), 0) as total").Scan(&sum)
	s.TotalEarnings = sum.Total

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	r.db.Model(&models.Earning{}).Select("COALESCE(SUM(amount), 0) as total").
		Where("created_at >= ?", midnight).Scan(&sum)
	s.TodayEarnings = sum.Total

	r.db.Model(&models.Withdrawal{}).Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", domain.WithdrawalStatusCompleted).Scan(&sum)
	s.TotalWithdrawals = sum.Total

	r.db.Model(&models.Withdrawal{}).Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", domain.WithdrawalStatusPending).Scan(&sum)
	s.PendingWithdrawals = sum.Total

	return &s, nil
}

// ListUsers returns all users, newest first.
func (r *AdminRepository) ListUsers(limit, offset int) ([]models.User, int64, error) {
	var total int64
	r.db.Model(&models.User{}).Count(&total)
	var users []models.User
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}
