package document

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleData() PayslipData {
	return PayslipData{
		EmployeeID:   "EMP-000001",
		EmployeeName: "Asha Verma",
		Month:        6,
		Year:         2024,
		DaysInMonth:  30,
		DaysPresent:  27,
		TotalLeaves:  3,
		PaidLeaves:   1,
		UnpaidLeaves: 2,
		Earnings: []LineItem{
			{Label: "Basic", Amount: "20000.00"},
			{Label: "HRA", Amount: "8000.00"},
		},
		Deductions: []LineItem{
			{Label: "PF", Amount: "1800.00"},
		},
		GrossSalary:       "28000.00",
		TotalDeduction:    "3800.00",
		NetPayable:        "24200.00",
		TotalPayable:      "24200.00",
		TotalPayableValue: 24200,
	}
}

type recordingSurface struct {
	visibility map[string]bool
	snapErr    error
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{visibility: make(map[string]bool)}
}

func (s *recordingSurface) SetSectionVisible(title string, visible bool) {
	s.visibility[title] = visible
}

func (s *recordingSurface) Snapshot() (*image.RGBA, error) {
	if s.snapErr != nil {
		return nil, s.snapErr
	}
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func TestCaptureHidesExcludedSectionsAndRestores(t *testing.T) {
	template := BuildPayslipTemplate(sampleData())
	surface := newRecordingSurface()

	_, err := Capture(surface, template)

	assert.NoError(t, err)
	// Restored to visible after the snapshot.
	assert.True(t, surface.visibility["Actions"])
}

func TestCaptureRestoresOnSnapshotError(t *testing.T) {
	template := BuildPayslipTemplate(sampleData())
	surface := newRecordingSurface()
	surface.snapErr = errors.New("boom")

	_, err := Capture(surface, template)

	assert.Error(t, err)
	assert.True(t, surface.visibility["Actions"])
}

func TestTemplateSurfaceExcludesHiddenSections(t *testing.T) {
	template := BuildPayslipTemplate(sampleData())

	full := NewTemplateSurface(template)
	fullImg, err := full.Snapshot()
	assert.NoError(t, err)

	captured, err := Capture(NewTemplateSurface(template), template)
	assert.NoError(t, err)

	// Hiding the actions section makes the rendered image shorter.
	assert.Less(t, captured.Bounds().Dy(), fullImg.Bounds().Dy())
}

func TestRasterizeRendersFlaggedSections(t *testing.T) {
	template := BuildPayslipTemplate(sampleData())

	withActions := Rasterize(template).Bounds().Dy()

	trimmed := template
	trimmed.Sections = nil
	for _, sec := range template.Sections {
		if sec.ExcludeFromCapture {
			continue
		}
		trimmed.Sections = append(trimmed.Sections, sec)
	}

	// The flag alone drops nothing; only hiding on the surface does.
	assert.Greater(t, withActions, Rasterize(trimmed).Bounds().Dy())
}

func TestBuildPayslipTemplateMarksActionsExcluded(t *testing.T) {
	template := BuildPayslipTemplate(sampleData())

	var excluded []string
	for _, sec := range template.Sections {
		if sec.ExcludeFromCapture {
			excluded = append(excluded, sec.Title)
		}
	}
	assert.Equal(t, []string{"Actions"}, excluded)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "payslip_EMP-000001_6_2024.pdf", Filename("EMP-000001", 6, 2024))
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Twenty-Eight Thousand Rupees Only", AmountInWords(28000))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(0))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(-5))
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewPDFRenderer()

	out, err := renderer.Render(sampleData())

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
