package leave

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	leaveerrors "github.com/PADMANABAN5/hrms/internal/leave/errors"
	"github.com/PADMANABAN5/hrms/internal/shared/contextutil"
)

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	rec := &Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Days:       int(end.Sub(start).Hours()/24) + 1,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		l.Error("failed to create leave record", zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Info("leave record created",
		zap.String("employee_id", rec.EmployeeID),
		zap.Int("days", rec.Days),
	)
	return mapToResponse(*rec), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, rec := range leaves {
		resp[i] = mapToResponse(rec)
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (LeaveResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	rec.Status = status
	if err := s.repo.Update(ctx, rec); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ApprovedDaysInMonth sums approved leave days falling inside the calendar month.
func (s *service) ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.repo.SumApprovedDaysInPeriod(ctx, employeeID, start, end)
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Days:       l.Days,
		LeaveType:  l.LeaveType,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
