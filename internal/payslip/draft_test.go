package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func sampleDraft() *Draft {
	return &Draft{
		Employee: EmployeeSnapshot{
			EmployeeID: "EMP-000001",
			Name:       "Asha Verma",
			Email:      "asha@example.com",
		},
		Month: 6,
		Year:  2024,
		Profile: SalaryProfile{
			Basic:            dec("20000"),
			HRA:              dec("8000"),
			SpecialAllowance: dec("2000"),
		},
		TotalLeaves: 3,
	}
}

func TestApplyParsesLeniently(t *testing.T) {
	d := sampleDraft()

	d.Apply(UpdateDraftRequest{
		TotalLeaves:  strPtr("5"),
		TDSDeduction: strPtr("1500.50"),
		Bonus:        strPtr("junk"),
	})

	assert.Equal(t, 5, d.TotalLeaves)
	assert.True(t, d.Profile.TDSDeduction.Equal(dec("1500.5")))
	assert.True(t, d.Bonus.IsZero())
}

func TestApplyLeavesAbsentFieldsUnchanged(t *testing.T) {
	d := sampleDraft()
	d.Bonus = dec("1000")

	d.Apply(UpdateDraftRequest{Remark: strPtr("final settlement")})

	assert.Equal(t, 3, d.TotalLeaves)
	assert.True(t, d.Bonus.Equal(dec("1000")))
	assert.Equal(t, "final settlement", d.Remark)
}

func TestApplyOtherRecoveryOverrideSticksUntilLeavesChange(t *testing.T) {
	d := sampleDraft()

	// Derived recovery: 2 unpaid days at 1000/day.
	assert.True(t, d.Derive().OtherRecovery.Equal(dec("2000")))

	d.Apply(UpdateDraftRequest{OtherRecovery: strPtr("750")})
	assert.True(t, d.Derive().OtherRecovery.Equal(dec("750")))

	// An unrelated edit keeps the override.
	d.Apply(UpdateDraftRequest{Bonus: strPtr("500")})
	assert.True(t, d.Derive().OtherRecovery.Equal(dec("750")))

	// Changing total leaves clears it back to derived.
	d.Apply(UpdateDraftRequest{TotalLeaves: strPtr("2")})
	assert.Nil(t, d.OtherRecoveryOverride)
	assert.True(t, d.Derive().OtherRecovery.Equal(dec("1000")))
}

func TestApplySameLeaveCountKeepsOverride(t *testing.T) {
	d := sampleDraft()
	d.Apply(UpdateDraftRequest{OtherRecovery: strPtr("750")})

	d.Apply(UpdateDraftRequest{TotalLeaves: strPtr("3")})

	assert.NotNil(t, d.OtherRecoveryOverride)
}

func TestApplyPeriodPatchRecomputesCalendar(t *testing.T) {
	d := sampleDraft()

	d.Apply(UpdateDraftRequest{Month: intPtr(2)})

	assert.Equal(t, 2, d.Month)
	assert.Equal(t, 29, d.Derive().DaysInMonth)

	d.Apply(UpdateDraftRequest{Year: intPtr(2023)})
	assert.Equal(t, 28, d.Derive().DaysInMonth)
}

func TestApplyPeriodChangeClearsOverride(t *testing.T) {
	d := sampleDraft()
	d.Apply(UpdateDraftRequest{OtherRecovery: strPtr("750")})

	d.Apply(UpdateDraftRequest{Month: intPtr(7)})
	assert.Nil(t, d.OtherRecoveryOverride)

	// Re-sending the current period keeps a fresh override.
	d.Apply(UpdateDraftRequest{OtherRecovery: strPtr("750")})
	d.Apply(UpdateDraftRequest{Month: intPtr(7), Year: intPtr(2024)})
	assert.NotNil(t, d.OtherRecoveryOverride)
}

func TestDeriveRecomputesFromScratch(t *testing.T) {
	d := sampleDraft()

	first := d.Derive()
	d.Apply(UpdateDraftRequest{TotalLeaves: strPtr("0")})
	second := d.Derive()
	d.Apply(UpdateDraftRequest{TotalLeaves: strPtr("3")})
	third := d.Derive()

	assert.True(t, second.OtherRecovery.IsZero())
	assert.True(t, first.NetPayable.Equal(third.NetPayable))
	assert.True(t, first.OtherRecovery.Equal(third.OtherRecovery))
}
