package payslip

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportHeaders = []string{
	"Payslip ID", "Employee ID", "Employee Name", "Month", "Year",
	"Days In Month", "Days Present", "Total Leaves", "Paid Leaves", "Unpaid Leaves",
	"Basic", "HRA", "Special Allowance", "Adhoc", "Food Allowance",
	"Communication Allowance", "Internet Allowance",
	"PF", "PT", "TDS", "Insurance", "LWF", "ESI", "VPF", "Other Recovery",
	"Gross Salary", "Bonus", "Salary Hold", "Total Deduction", "Net Payable", "Total Payable",
	"Remark", "Generated At",
}

// Export writes the filtered payslips to an XLSX workbook, one row per
// slip, with a bold frozen header row.
func (s *service) Export(ctx context.Context, filter ListFilter) ([]byte, error) {
	payslips, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payslips"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, err
	}

	for i, p := range payslips {
		row := i + 2
		values := []interface{}{
			p.ID.String(), p.EmployeeID, p.EmployeeName, p.Month, p.Year,
			p.DaysInMonth, p.DaysPresent, p.TotalLeaves, p.PaidLeaves, p.UnpaidLeaves,
			p.Basic.InexactFloat64(), p.HRA.InexactFloat64(), p.SpecialAllowance.InexactFloat64(),
			p.Adhoc.InexactFloat64(), p.FoodAllowance.InexactFloat64(),
			p.CommunicationAllowance.InexactFloat64(), p.InternetAllowance.InexactFloat64(),
			p.PFDeduction.InexactFloat64(), p.PTDeduction.InexactFloat64(), p.TDSDeduction.InexactFloat64(),
			p.InsuranceDeduction.InexactFloat64(), p.LWFDeduction.InexactFloat64(),
			p.ESIDeduction.InexactFloat64(), p.VPFDeduction.InexactFloat64(), p.OtherRecovery.InexactFloat64(),
			p.GrossSalary.InexactFloat64(), p.Bonus.InexactFloat64(), p.SalaryHold.InexactFloat64(),
			p.TotalDeduction.InexactFloat64(), p.NetPayable.InexactFloat64(), p.TotalPayable.InexactFloat64(),
			p.Remark, p.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		startCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, startCell, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("payslip export write failed", zap.Error(err))
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("payslip export generated", zap.Int("rows", len(payslips)))
	return buf.Bytes(), nil
}
