package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseProfile() SalaryProfile {
	return SalaryProfile{
		Basic:            dec("20000"),
		HRA:              dec("8000"),
		SpecialAllowance: dec("2000"),
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 31, DaysInMonth(1, 2024))
	assert.Equal(t, 30, DaysInMonth(4, 2024))

	// Out-of-range periods fail closed.
	assert.Equal(t, 0, DaysInMonth(0, 2024))
	assert.Equal(t, 0, DaysInMonth(13, 2024))
	assert.Equal(t, 0, DaysInMonth(5, 0))
}

func TestSplitLeaves(t *testing.T) {
	paid, unpaid := SplitLeaves(0)
	assert.Equal(t, 0, paid)
	assert.Equal(t, 0, unpaid)

	paid, unpaid = SplitLeaves(1)
	assert.Equal(t, 1, paid)
	assert.Equal(t, 0, unpaid)

	paid, unpaid = SplitLeaves(3)
	assert.Equal(t, 1, paid)
	assert.Equal(t, 2, unpaid)
}

func TestComputeBaseline(t *testing.T) {
	d := Compute(ComputeInputs{
		Month:       1,
		Year:        2024,
		TotalLeaves: 0,
		Profile:     baseProfile(),
	})

	assert.Equal(t, 31, d.DaysInMonth)
	assert.Equal(t, 31, d.DaysPresent)
	assert.True(t, d.GrossSalary.Equal(dec("30000")), d.GrossSalary.String())
	assert.True(t, d.OtherRecovery.IsZero())
	assert.True(t, d.TotalDeduction.IsZero())
	assert.True(t, d.NetPayable.Equal(dec("30000")))
	assert.True(t, d.TotalPayable.Equal(dec("30000")))
}

func TestComputeUnpaidLeaveRecovery(t *testing.T) {
	// June has 30 days, so per-day salary is exactly 1000.
	d := Compute(ComputeInputs{
		Month:       6,
		Year:        2024,
		TotalLeaves: 3,
		Profile:     baseProfile(),
	})

	assert.Equal(t, 1, d.PaidLeaves)
	assert.Equal(t, 2, d.UnpaidLeaves)
	assert.Equal(t, 27, d.DaysPresent)
	assert.True(t, d.PerDaySalary.Equal(dec("1000")), d.PerDaySalary.String())
	assert.True(t, d.OtherRecovery.Equal(dec("2000")), d.OtherRecovery.String())
	assert.True(t, d.NetPayable.Equal(dec("28000")))
}

func TestComputeOtherRecoveryOverride(t *testing.T) {
	override := dec("500")
	d := Compute(ComputeInputs{
		Month:                 6,
		Year:                  2024,
		TotalLeaves:           3,
		Profile:               baseProfile(),
		OtherRecoveryOverride: &override,
	})

	assert.True(t, d.OtherRecovery.Equal(dec("500")))
	assert.True(t, d.NetPayable.Equal(dec("29500")))
}

func TestComputeInvalidPeriodZeroesPerDay(t *testing.T) {
	d := Compute(ComputeInputs{
		Month:       13,
		Year:        2024,
		TotalLeaves: 3,
		Profile:     baseProfile(),
	})

	assert.Equal(t, 0, d.DaysInMonth)
	assert.Equal(t, 0, d.DaysPresent)
	assert.True(t, d.PerDaySalary.IsZero())
	assert.True(t, d.OtherRecovery.IsZero())
	// Gross still accumulates even when the period is unusable.
	assert.True(t, d.GrossSalary.Equal(dec("30000")))
}

func TestComputeDaysPresentNeverNegative(t *testing.T) {
	d := Compute(ComputeInputs{
		Month:       2,
		Year:        2024,
		TotalLeaves: 40,
		Profile:     baseProfile(),
	})

	assert.Equal(t, 0, d.DaysPresent)
	assert.Equal(t, 1, d.PaidLeaves)
	assert.Equal(t, 39, d.UnpaidLeaves)
}

func TestComputeDeductionsAndHold(t *testing.T) {
	p := baseProfile()
	p.PFDeduction = dec("1800")
	p.PTDeduction = dec("200")
	p.TDSDeduction = dec("1500")

	d := Compute(ComputeInputs{
		Month:       6,
		Year:        2024,
		TotalLeaves: 0,
		Profile:     p,
		Bonus:       dec("5000"),
		SalaryHold:  dec("1000"),
	})

	assert.True(t, d.TotalDeduction.Equal(dec("3500")))
	assert.True(t, d.NetPayable.Equal(dec("26500")))
	assert.True(t, d.TotalPayable.Equal(dec("30500")))
}

func TestComputeNetPayableMayGoNegativeButTotalPayableClamps(t *testing.T) {
	p := SalaryProfile{
		Basic:        dec("1000"),
		TDSDeduction: dec("5000"),
	}

	d := Compute(ComputeInputs{
		Month:   6,
		Year:    2024,
		Profile: p,
	})

	assert.True(t, d.NetPayable.Equal(dec("-4000")), d.NetPayable.String())
	assert.True(t, d.TotalPayable.IsZero())
}

func TestComputeIsIdempotent(t *testing.T) {
	in := ComputeInputs{
		Month:       2,
		Year:        2024,
		TotalLeaves: 5,
		Profile:     baseProfile(),
		Bonus:       dec("1234.56"),
	}

	first := Compute(in)
	second := Compute(in)

	assert.Equal(t, first.DaysPresent, second.DaysPresent)
	assert.True(t, first.NetPayable.Equal(second.NetPayable))
	assert.True(t, first.TotalPayable.Equal(second.TotalPayable))
	assert.True(t, first.OtherRecovery.Equal(second.OtherRecovery))
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount("1234.50").Equal(dec("1234.5")))
	assert.True(t, ParseAmount("  42 ").Equal(dec("42")))
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("12,000").IsZero())
}

func TestParseLeaves(t *testing.T) {
	assert.Equal(t, 3, ParseLeaves("3"))
	assert.Equal(t, 0, ParseLeaves(""))
	assert.Equal(t, 0, ParseLeaves("2.5"))
	assert.Equal(t, 0, ParseLeaves("-1"))
	assert.Equal(t, 0, ParseLeaves("xyz"))
}
