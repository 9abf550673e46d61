package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	EmployeeID    string `json:"employee_id" binding:"omitempty,max=20"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phone_number" binding:"omitempty,max=20"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"date_of_joining" binding:"required"`
	PFNumber      string `json:"pf_number"`
	PAN           string `json:"pan"`
	BankName      string `json:"bank_name"`
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`

	Basic                  decimal.Decimal `json:"basic"`
	HRA                    decimal.Decimal `json:"hra"`
	SpecialAllowance       decimal.Decimal `json:"special_allowance"`
	Adhoc                  decimal.Decimal `json:"adhoc"`
	FoodAllowance          decimal.Decimal `json:"food_allowance"`
	CommunicationAllowance decimal.Decimal `json:"communication_allowance"`
	InternetAllowance      decimal.Decimal `json:"internet_allowance"`

	PFDeduction        decimal.Decimal `json:"pf_deduction"`
	PTDeduction        decimal.Decimal `json:"pt_deduction"`
	TDSDeduction       decimal.Decimal `json:"tds_deduction"`
	InsuranceDeduction decimal.Decimal `json:"insurance_deduction"`
	LWFDeduction       decimal.Decimal `json:"lwf_deduction"`
	ESIDeduction       decimal.Decimal `json:"esi_deduction"`
	VPFDeduction       decimal.Decimal `json:"vpf_deduction"`
}

type UpdateEmployeeRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phone_number" binding:"omitempty,max=20"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"date_of_joining" binding:"required"`
	PFNumber      string `json:"pf_number"`
	PAN           string `json:"pan"`
	BankName      string `json:"bank_name"`
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`

	Basic                  decimal.Decimal `json:"basic"`
	HRA                    decimal.Decimal `json:"hra"`
	SpecialAllowance       decimal.Decimal `json:"special_allowance"`
	Adhoc                  decimal.Decimal `json:"adhoc"`
	FoodAllowance          decimal.Decimal `json:"food_allowance"`
	CommunicationAllowance decimal.Decimal `json:"communication_allowance"`
	InternetAllowance      decimal.Decimal `json:"internet_allowance"`

	PFDeduction        decimal.Decimal `json:"pf_deduction"`
	PTDeduction        decimal.Decimal `json:"pt_deduction"`
	TDSDeduction       decimal.Decimal `json:"tds_deduction"`
	InsuranceDeduction decimal.Decimal `json:"insurance_deduction"`
	LWFDeduction       decimal.Decimal `json:"lwf_deduction"`
	ESIDeduction       decimal.Decimal `json:"esi_deduction"`
	VPFDeduction       decimal.Decimal `json:"vpf_deduction"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
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
	Status        string `json:"status"`

	Basic                  string `json:"basic"`
	HRA                    string `json:"hra"`
	SpecialAllowance       string `json:"special_allowance"`
	Adhoc                  string `json:"adhoc"`
	FoodAllowance          string `json:"food_allowance"`
	CommunicationAllowance string `json:"communication_allowance"`
	InternetAllowance      string `json:"internet_allowance"`

	PFDeduction        string `json:"pf_deduction"`
	PTDeduction        string `json:"pt_deduction"`
	TDSDeduction       string `json:"tds_deduction"`
	InsuranceDeduction string `json:"insurance_deduction"`
	LWFDeduction       string `json:"lwf_deduction"`
	ESIDeduction       string `json:"esi_deduction"`
	VPFDeduction       string `json:"vpf_deduction"`

	GrossSalary string `json:"gross_salary"`
	CreatedAt   string `json:"created_at"`
}

// EmployeeOption is the slim shape used by selection dropdowns.
type EmployeeOption struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
}
