package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSnapshot is the identity block carried through a draft and onto
// the persisted payslip.
type EmployeeSnapshot struct {
	EmployeeID    string `json:"employee_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"date_of_joining"`
	PFNumber      string `json:"pf_number"`
	PAN           string `json:"pan"`
	BankName      string `json:"bank_name"`
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`
}

// Draft is the in-progress payslip a user is editing. It lives in Redis
// under a TTL, so an abandoned session simply expires. Every read of a
// draft recomputes the derived figures from these raw inputs.
type Draft struct {
	Employee EmployeeSnapshot `json:"employee"`
	Month    int              `json:"month"`
	Year     int              `json:"year"`

	Profile     SalaryProfile `json:"profile"`
	TotalLeaves int           `json:"total_leaves"`

	// OtherRecoveryOverride is set when the user typed an explicit
	// recovery amount. It is cleared the moment total_leaves changes,
	// returning the field to its derived value.
	OtherRecoveryOverride *decimal.Decimal `json:"other_recovery_override,omitempty"`

	Bonus      decimal.Decimal `json:"bonus"`
	SalaryHold decimal.Decimal `json:"salary_hold"`
	Remark     string          `json:"remark"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Apply folds a patch of raw form values into the draft. Fields absent
// from the patch keep their current value; present but unparsable values
// become zero.
func (d *Draft) Apply(patch UpdateDraftRequest) {
	if patch.Month != nil || patch.Year != nil {
		month, year := d.Month, d.Year
		if patch.Month != nil {
			month = *patch.Month
		}
		if patch.Year != nil {
			year = *patch.Year
		}
		if month != d.Month || year != d.Year {
			// A new period invalidates a typed recovery amount the same
			// way a leave change does.
			d.OtherRecoveryOverride = nil
		}
		d.Month, d.Year = month, year
	}
	if patch.TotalLeaves != nil {
		newLeaves := ParseLeaves(*patch.TotalLeaves)
		if newLeaves != d.TotalLeaves {
			d.OtherRecoveryOverride = nil
		}
		d.TotalLeaves = newLeaves
	}
	if patch.TDSDeduction != nil {
		d.Profile.TDSDeduction = ParseAmount(*patch.TDSDeduction)
	}
	if patch.VPFDeduction != nil {
		d.Profile.VPFDeduction = ParseAmount(*patch.VPFDeduction)
	}
	if patch.OtherRecovery != nil {
		amount := ParseAmount(*patch.OtherRecovery)
		d.OtherRecoveryOverride = &amount
	}
	if patch.Bonus != nil {
		d.Bonus = ParseAmount(*patch.Bonus)
	}
	if patch.SalaryHold != nil {
		d.SalaryHold = ParseAmount(*patch.SalaryHold)
	}
	if patch.Remark != nil {
		d.Remark = *patch.Remark
	}

	d.UpdatedAt = time.Now().UTC()
}

// Derive recomputes every figure from the draft's raw inputs.
func (d *Draft) Derive() Derived {
	return Compute(ComputeInputs{
		Month:                 d.Month,
		Year:                  d.Year,
		TotalLeaves:           d.TotalLeaves,
		Profile:               d.Profile,
		OtherRecoveryOverride: d.OtherRecoveryOverride,
		Bonus:                 d.Bonus,
		SalaryHold:            d.SalaryHold,
	})
}
