package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payslip is the persisted, immutable record for one employee and period.
// Employee identity and the salary profile are snapshotted at generation
// time so later profile edits never change an issued slip.
type Payslip struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_payslips_employee_period"`
	Month      int       `gorm:"column:month;not null;uniqueIndex:uq_payslips_employee_period"`
	Year       int       `gorm:"column:year;not null;uniqueIndex:uq_payslips_employee_period"`

	EmployeeName  string `gorm:"column:employee_name;type:varchar(255)"`
	EmployeeEmail string `gorm:"column:employee_email;type:text"`
	PhoneNumber   string `gorm:"column:phone_number;type:varchar(20)"`
	Designation   string `gorm:"column:designation;type:varchar(100)"`
	DateOfJoining string `gorm:"column:date_of_joining;type:varchar(10)"`
	PFNumber      string `gorm:"column:pf_number;type:varchar(50)"`
	PAN           string `gorm:"column:pan;type:varchar(20)"`
	BankName      string `gorm:"column:bank_name;type:varchar(100)"`
	IFSC          string `gorm:"column:ifsc;type:varchar(20)"`
	AccountNumber string `gorm:"column:account_number;type:varchar(30)"`

	DaysInMonth  int `gorm:"column:days_in_month;not null"`
	DaysPresent  int `gorm:"column:days_present;not null"`
	TotalLeaves  int `gorm:"column:total_leaves;not null"`
	PaidLeaves   int `gorm:"column:paid_leaves;not null"`
	UnpaidLeaves int `gorm:"column:unpaid_leaves;not null"`

	Basic                  decimal.Decimal `gorm:"column:basic;type:numeric(12,2)"`
	HRA                    decimal.Decimal `gorm:"column:hra;type:numeric(12,2)"`
	SpecialAllowance       decimal.Decimal `gorm:"column:special_allowance;type:numeric(12,2)"`
	Adhoc                  decimal.Decimal `gorm:"column:adhoc;type:numeric(12,2)"`
	FoodAllowance          decimal.Decimal `gorm:"column:food_allowance;type:numeric(12,2)"`
	CommunicationAllowance decimal.Decimal `gorm:"column:communication_allowance;type:numeric(12,2)"`
	InternetAllowance      decimal.Decimal `gorm:"column:internet_allowance;type:numeric(12,2)"`

	PFDeduction        decimal.Decimal `gorm:"column:pf_deduction;type:numeric(12,2)"`
	PTDeduction        decimal.Decimal `gorm:"column:pt_deduction;type:numeric(12,2)"`
	TDSDeduction       decimal.Decimal `gorm:"column:tds_deduction;type:numeric(12,2)"`
	InsuranceDeduction decimal.Decimal `gorm:"column:insurance_deduction;type:numeric(12,2)"`
	LWFDeduction       decimal.Decimal `gorm:"column:lwf_deduction;type:numeric(12,2)"`
	ESIDeduction       decimal.Decimal `gorm:"column:esi_deduction;type:numeric(12,2)"`
	VPFDeduction       decimal.Decimal `gorm:"column:vpf_deduction;type:numeric(12,2)"`

	GrossSalary    decimal.Decimal `gorm:"column:gross_salary;type:numeric(12,2)"`
	PerDaySalary   decimal.Decimal `gorm:"column:per_day_salary;type:numeric(14,4)"`
	OtherRecovery  decimal.Decimal `gorm:"column:other_recovery;type:numeric(12,2)"`
	Bonus          decimal.Decimal `gorm:"column:bonus;type:numeric(12,2)"`
	SalaryHold     decimal.Decimal `gorm:"column:salary_hold;type:numeric(12,2)"`
	TotalDeduction decimal.Decimal `gorm:"column:total_deduction;type:numeric(12,2)"`
	NetPayable     decimal.Decimal `gorm:"column:net_payable;type:numeric(12,2)"`
	TotalPayable   decimal.Decimal `gorm:"column:total_payable;type:numeric(12,2)"`

	Remark      string    `gorm:"column:remark;type:text"`
	GeneratedBy string    `gorm:"column:generated_by;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Payslip) TableName() string {
	return "payslips"
}
