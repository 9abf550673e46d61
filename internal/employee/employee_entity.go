package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	Email         string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	PhoneNumber   string    `gorm:"column:phone_number;type:varchar(20)"`
	Designation   string    `gorm:"column:designation;type:varchar(100)"`
	DateOfJoining time.Time `gorm:"column:date_of_joining;type:date"`
	PFNumber      string    `gorm:"column:pf_number;type:varchar(50)"`
	PAN           string    `gorm:"column:pan;type:varchar(20)"`
	BankName      string    `gorm:"column:bank_name;type:varchar(100)"`
	IFSC          string    `gorm:"column:ifsc;type:varchar(20)"`
	AccountNumber string    `gorm:"column:account_number;type:varchar(30)"`
	Status        string    `gorm:"column:status;type:varchar(20);default:active"`

	// Monthly earning components.
	Basic                  decimal.Decimal `gorm:"column:basic;type:numeric(12,2)"`
	HRA                    decimal.Decimal `gorm:"column:hra;type:numeric(12,2)"`
	SpecialAllowance       decimal.Decimal `gorm:"column:special_allowance;type:numeric(12,2)"`
	Adhoc                  decimal.Decimal `gorm:"column:adhoc;type:numeric(12,2)"`
	FoodAllowance          decimal.Decimal `gorm:"column:food_allowance;type:numeric(12,2)"`
	CommunicationAllowance decimal.Decimal `gorm:"column:communication_allowance;type:numeric(12,2)"`
	InternetAllowance      decimal.Decimal `gorm:"column:internet_allowance;type:numeric(12,2)"`

	// Monthly statutory deductions.
	PFDeduction        decimal.Decimal `gorm:"column:pf_deduction;type:numeric(12,2)"`
	PTDeduction        decimal.Decimal `gorm:"column:pt_deduction;type:numeric(12,2)"`
	TDSDeduction       decimal.Decimal `gorm:"column:tds_deduction;type:numeric(12,2)"`
	InsuranceDeduction decimal.Decimal `gorm:"column:insurance_deduction;type:numeric(12,2)"`
	LWFDeduction       decimal.Decimal `gorm:"column:lwf_deduction;type:numeric(12,2)"`
	ESIDeduction       decimal.Decimal `gorm:"column:esi_deduction;type:numeric(12,2)"`
	VPFDeduction       decimal.Decimal `gorm:"column:vpf_deduction;type:numeric(12,2)"`

	// Derived sum of the earning components, maintained on every write.
	GrossSalary decimal.Decimal `gorm:"column:gross_salary;type:numeric(12,2)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

// Gross recomputes the earning total from the components.
func (e Employee) Gross() decimal.Decimal {
	return e.Basic.
		Add(e.HRA).
		Add(e.SpecialAllowance).
		Add(e.Adhoc).
		Add(e.FoodAllowance).
		Add(e.CommunicationAllowance).
		Add(e.InternetAllowance)
}
