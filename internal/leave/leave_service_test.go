package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	leaveerrors "github.com/PADMANABAN5/hrms/internal/leave/errors"
)

type fakeRepo struct {
	createFn func(ctx context.Context, l *Leave) error
	sumFn    func(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}

func (f *fakeRepo) Create(ctx context.Context, l *Leave) error { return f.createFn(ctx, l) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Leave, error) {
	return nil, nil
}
func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	return nil, nil
}
func (f *fakeRepo) SumApprovedDaysInPeriod(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return f.sumFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) Update(ctx context.Context, l *Leave) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func TestCreateComputesInclusiveDays(t *testing.T) {
	var saved *Leave
	repo := &fakeRepo{
		createFn: func(ctx context.Context, l *Leave) error {
			saved = l
			return nil
		},
	}

	svc := NewService(repo)
	res, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP-000001",
		StartDate:  "2024-02-12",
		EndDate:    "2024-02-14",
		LeaveType:  "casual",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Days)
	assert.Equal(t, StatusPending, saved.Status)
}

func TestCreateSingleDayLeave(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, l *Leave) error { return nil },
	}

	svc := NewService(repo)
	res, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP-000001",
		StartDate:  "2024-02-12",
		EndDate:    "2024-02-12",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Days)
}

func TestCreateRejectsReversedRange(t *testing.T) {
	svc := NewService(&fakeRepo{})
	_, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP-000001",
		StartDate:  "2024-02-14",
		EndDate:    "2024-02-12",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestApprovedDaysInMonthUsesCalendarBounds(t *testing.T) {
	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		sumFn: func(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
			gotStart, gotEnd = start, end
			return 2, nil
		},
	}

	svc := NewService(repo)
	days, err := svc.ApprovedDaysInMonth(context.Background(), "EMP-000001", 2, 2024)

	assert.NoError(t, err)
	assert.Equal(t, 2, days)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), gotEnd)
}
