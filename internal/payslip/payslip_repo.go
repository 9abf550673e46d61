package payslip

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Payslip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

const insertPayslipQuery = `
INSERT INTO payslips (
	id, employee_id, month, year,
	employee_name, employee_email, phone_number, designation, date_of_joining,
	pf_number, pan, bank_name, ifsc, account_number,
	days_in_month, days_present, total_leaves, paid_leaves, unpaid_leaves,
	basic, hra, special_allowance, adhoc, food_allowance, communication_allowance, internet_allowance,
	pf_deduction, pt_deduction, tds_deduction, insurance_deduction, lwf_deduction, esi_deduction, vpf_deduction,
	gross_salary, per_day_salary, other_recovery, bonus, salary_hold,
	total_deduction, net_payable, total_payable,
	remark, generated_by, created_at, updated_at
) VALUES (
	$1, $2, $3, $4,
	$5, $6, $7, $8, $9,
	$10, $11, $12, $13, $14,
	$15, $16, $17, $18, $19,
	$20, $21, $22, $23, $24, $25, $26,
	$27, $28, $29, $30, $31, $32, $33,
	$34, $35, $36, $37, $38,
	$39, $40, $41,
	$42, $43, NOW(), NOW()
)
`

// Create inserts through the open transaction when one is set, so the
// payslip row and its outbox event commit or roll back together.
func (r *repository) Create(ctx context.Context, p *Payslip) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(p).Error
	}

	_, err := r.tx.ExecContext(ctx, insertPayslipQuery,
		p.ID, p.EmployeeID, p.Month, p.Year,
		p.EmployeeName, p.EmployeeEmail, p.PhoneNumber, p.Designation, p.DateOfJoining,
		p.PFNumber, p.PAN, p.BankName, p.IFSC, p.AccountNumber,
		p.DaysInMonth, p.DaysPresent, p.TotalLeaves, p.PaidLeaves, p.UnpaidLeaves,
		p.Basic, p.HRA, p.SpecialAllowance, p.Adhoc, p.FoodAllowance, p.CommunicationAllowance, p.InternetAllowance,
		p.PFDeduction, p.PTDeduction, p.TDSDeduction, p.InsuranceDeduction, p.LWFDeduction, p.ESIDeduction, p.VPFDeduction,
		p.GrossSalary, p.PerDaySalary, p.OtherRecovery, p.Bonus, p.SalaryHold,
		p.TotalDeduction, p.NetPayable, p.TotalPayable,
		p.Remark, p.GeneratedBy,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		First(&p, "employee_id = ? AND month = ? AND year = ?", employeeID, month, year).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payslip, error) {
	q := r.db.WithContext(ctx).Model(&Payslip{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year > 0 {
		q = q.Where("year = ?", filter.Year)
	}

	var payslips []Payslip
	err := q.Order("year DESC, month DESC, employee_id ASC").Find(&payslips).Error
	return payslips, err
}
