package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	SumApprovedDaysInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (int, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

// SumApprovedDaysInPeriod counts approved leave days whose dates overlap the
// given period. Days falling outside the period are excluded so a leave
// spanning a month boundary only contributes the days inside the month.
func (r *repository) SumApprovedDaysInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Select(`COALESCE(SUM(
			(LEAST(end_date, ?::date) - GREATEST(start_date, ?::date)) + 1
		), 0)`, periodEnd, periodStart).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", periodEnd, periodStart).
		Scan(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id).Error
}
