package document

import (
	"fmt"
	"time"

	"github.com/divan/num2words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PayslipData is the neutral shape the renderer consumes. Amounts arrive
// pre-formatted so the document layer never does money arithmetic.
type PayslipData struct {
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string
	Designation   string
	DateOfJoining string
	PFNumber      string
	PAN           string
	BankName      string
	IFSC          string
	AccountNumber string

	Month int
	Year  int

	DaysInMonth  int
	DaysPresent  int
	TotalLeaves  int
	PaidLeaves   int
	UnpaidLeaves int

	Earnings   []LineItem
	Deductions []LineItem

	GrossSalary    string
	TotalDeduction string
	NetPayable     string
	TotalPayable   string

	// TotalPayableValue drives the amount-in-words line.
	TotalPayableValue float64

	Remark string
}

type LineItem struct {
	Label  string
	Amount string
}

// Row is one printed line of a section.
type Row struct {
	Left  string
	Right string
	Bold  bool
}

// Section is a titled block of rows. Sections flagged ExcludeFromCapture
// are hidden while the document is rasterized and restored afterwards;
// they exist for interactive surfaces only.
type Section struct {
	Title              string
	Rows               []Row
	ExcludeFromCapture bool
}

// Template is the ordered list of sections making up one payslip page
// flow.
type Template struct {
	Heading    string
	Subheading string
	Sections   []Section
}

// Filename is the canonical download name for a payslip document.
func Filename(employeeID string, month, year int) string {
	return fmt.Sprintf("payslip_%s_%d_%d.pdf", employeeID, month, year)
}

func periodLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// AmountInWords renders a rupee amount as words, e.g. "Twenty Eight
// Thousand Five Hundred Rupees Only". Paise are dropped.
func AmountInWords(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	words := num2words.Convert(int(amount))
	words = cases.Title(language.English).String(words)
	return words + " Rupees Only"
}

// BuildPayslipTemplate lays out the standard payslip: header, employee
// details, attendance, earnings and deductions, totals, and the
// amount-in-words footer. The trailing actions section never appears in
// rendered output.
func BuildPayslipTemplate(data PayslipData) Template {
	details := Section{
		Title: "Employee Details",
		Rows: []Row{
			{Left: "Employee ID", Right: data.EmployeeID},
			{Left: "Name", Right: data.EmployeeName},
			{Left: "Designation", Right: data.Designation},
			{Left: "Date of Joining", Right: data.DateOfJoining},
			{Left: "PF Number", Right: data.PFNumber},
			{Left: "PAN", Right: data.PAN},
			{Left: "Bank", Right: data.BankName},
			{Left: "IFSC", Right: data.IFSC},
			{Left: "Account Number", Right: data.AccountNumber},
		},
	}

	attendance := Section{
		Title: "Attendance",
		Rows: []Row{
			{Left: "Days in Month", Right: fmt.Sprintf("%d", data.DaysInMonth)},
			{Left: "Days Present", Right: fmt.Sprintf("%d", data.DaysPresent)},
			{Left: "Total Leaves", Right: fmt.Sprintf("%d", data.TotalLeaves)},
			{Left: "Paid Leaves", Right: fmt.Sprintf("%d", data.PaidLeaves)},
			{Left: "Unpaid Leaves", Right: fmt.Sprintf("%d", data.UnpaidLeaves)},
		},
	}

	earnings := Section{Title: "Earnings"}
	for _, item := range data.Earnings {
		earnings.Rows = append(earnings.Rows, Row{Left: item.Label, Right: item.Amount})
	}
	earnings.Rows = append(earnings.Rows, Row{Left: "Gross Salary", Right: data.GrossSalary, Bold: true})

	deductions := Section{Title: "Deductions"}
	for _, item := range data.Deductions {
		deductions.Rows = append(deductions.Rows, Row{Left: item.Label, Right: item.Amount})
	}
	deductions.Rows = append(deductions.Rows, Row{Left: "Total Deductions", Right: data.TotalDeduction, Bold: true})

	totals := Section{
		Title: "Summary",
		Rows: []Row{
			{Left: "Net Payable", Right: data.NetPayable},
			{Left: "Total Payable", Right: data.TotalPayable, Bold: true},
			{Left: "Amount in Words", Right: AmountInWords(data.TotalPayableValue)},
		},
	}
	if data.Remark != "" {
		totals.Rows = append(totals.Rows, Row{Left: "Remark", Right: data.Remark})
	}

	actions := Section{
		Title:              "Actions",
		ExcludeFromCapture: true,
		Rows: []Row{
			{Left: "Download", Right: ""},
			{Left: "Email", Right: ""},
		},
	}

	return Template{
		Heading:    "Payslip",
		Subheading: fmt.Sprintf("%s  |  %s", data.EmployeeName, periodLabel(data.Month, data.Year)),
		Sections:   []Section{details, attendance, earnings, deductions, totals, actions},
	}
}
