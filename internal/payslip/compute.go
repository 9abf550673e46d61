package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryProfile carries the monthly earning and deduction components a
// payslip is computed from.
type SalaryProfile struct {
	Basic                  decimal.Decimal
	HRA                    decimal.Decimal
	SpecialAllowance       decimal.Decimal
	Adhoc                  decimal.Decimal
	FoodAllowance          decimal.Decimal
	CommunicationAllowance decimal.Decimal
	InternetAllowance      decimal.Decimal

	PFDeduction        decimal.Decimal
	PTDeduction        decimal.Decimal
	TDSDeduction       decimal.Decimal
	InsuranceDeduction decimal.Decimal
	LWFDeduction       decimal.Decimal
	ESIDeduction       decimal.Decimal
	VPFDeduction       decimal.Decimal
}

// ComputeInputs is everything Compute needs for one employee and period.
// OtherRecoveryOverride, when set, replaces the derived unpaid-leave
// recovery amount.
type ComputeInputs struct {
	Month       int
	Year        int
	TotalLeaves int
	Profile     SalaryProfile

	OtherRecoveryOverride *decimal.Decimal
	Bonus                 decimal.Decimal
	SalaryHold            decimal.Decimal
}

// Derived holds every figure the engine produces. All amounts keep full
// precision; rounding happens only at the presentation layer.
type Derived struct {
	DaysInMonth  int
	DaysPresent  int
	PaidLeaves   int
	UnpaidLeaves int

	GrossSalary    decimal.Decimal
	PerDaySalary   decimal.Decimal
	OtherRecovery  decimal.Decimal
	TotalDeduction decimal.Decimal
	NetPayable     decimal.Decimal
	TotalPayable   decimal.Decimal
}

// DaysInMonth returns the calendar day count for the period, or 0 when the
// month or year is out of range. A zero day count downstream zeroes the
// per-day salary instead of dividing by garbage.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 || year < 1 {
		return 0
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// SplitLeaves applies the one-paid-leave policy: the first leave day of a
// month is paid, every further day is unpaid.
func SplitLeaves(total int) (paid, unpaid int) {
	if total >= 1 {
		return 1, total - 1
	}
	return 0, 0
}

// Compute derives a full payslip from raw inputs. It is a pure function:
// the same inputs always produce the same figures, so callers recompute
// from scratch on every change instead of patching previous results.
func Compute(in ComputeInputs) Derived {
	var d Derived

	d.DaysInMonth = DaysInMonth(in.Month, in.Year)
	d.PaidLeaves, d.UnpaidLeaves = SplitLeaves(in.TotalLeaves)

	d.DaysPresent = d.DaysInMonth - in.TotalLeaves
	if d.DaysPresent < 0 {
		d.DaysPresent = 0
	}

	p := in.Profile
	d.GrossSalary = p.Basic.
		Add(p.HRA).
		Add(p.SpecialAllowance).
		Add(p.Adhoc).
		Add(p.FoodAllowance).
		Add(p.CommunicationAllowance).
		Add(p.InternetAllowance)

	if d.DaysInMonth > 0 && d.GrossSalary.IsPositive() {
		d.PerDaySalary = d.GrossSalary.Div(decimal.NewFromInt(int64(d.DaysInMonth)))
	} else {
		d.PerDaySalary = decimal.Zero
	}

	if in.OtherRecoveryOverride != nil {
		d.OtherRecovery = *in.OtherRecoveryOverride
	} else {
		d.OtherRecovery = d.PerDaySalary.Mul(decimal.NewFromInt(int64(d.UnpaidLeaves)))
	}

	d.TotalDeduction = p.PFDeduction.
		Add(p.PTDeduction).
		Add(p.TDSDeduction).
		Add(p.InsuranceDeduction).
		Add(p.LWFDeduction).
		Add(p.ESIDeduction).
		Add(p.VPFDeduction).
		Add(d.OtherRecovery)

	d.NetPayable = d.GrossSalary.Sub(d.TotalDeduction)

	d.TotalPayable = d.NetPayable.Add(in.Bonus).Sub(in.SalaryHold)
	if d.TotalPayable.IsNegative() {
		d.TotalPayable = decimal.Zero
	}

	return d
}
