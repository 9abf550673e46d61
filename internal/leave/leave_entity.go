package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Leave struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string         `gorm:"column:employee_id;type:varchar(20);not null;index"`
	StartDate  time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time      `gorm:"column:end_date;type:date;not null"`
	Days       int            `gorm:"column:days;not null"`
	LeaveType  string         `gorm:"column:leave_type;type:varchar(50)"`
	Reason     string         `gorm:"column:reason;type:text"`
	Status     string         `gorm:"column:status;type:varchar(20);default:pending"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Leave) TableName() string {
	return "leaves"
}
