package payslip

type StartDraftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
}

// UpdateDraftRequest carries raw form values. Pointer fields distinguish
// "not sent" from "sent but empty"; values are parsed leniently, with
// unparsable input treated as zero.
type UpdateDraftRequest struct {
	Month         *int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year          *int    `json:"year" binding:"omitempty,min=2000,max=2100"`
	TotalLeaves   *string `json:"total_leaves"`
	TDSDeduction  *string `json:"tds_deduction"`
	VPFDeduction  *string `json:"vpf_deduction"`
	OtherRecovery *string `json:"other_recovery"`
	Bonus         *string `json:"bonus"`
	SalaryHold    *string `json:"salary_hold"`
	Remark        *string `json:"remark"`
}

type GenerateRequest struct {
	Remark string `json:"remark"`
}

type EmailRequest struct {
	Recipient string `json:"recipient" binding:"omitempty,email"`
}

// DraftResponse mirrors the editing screen: the raw inputs plus every
// derived figure, recomputed on each request.
type DraftResponse struct {
	Employee EmployeeSnapshot `json:"employee"`
	Month    int              `json:"month"`
	Year     int              `json:"year"`

	TotalLeaves  int `json:"total_leaves"`
	PaidLeaves   int `json:"paid_leaves"`
	UnpaidLeaves int `json:"unpaid_leaves"`
	DaysInMonth  int `json:"days_in_month"`
	DaysPresent  int `json:"days_present"`

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

	GrossSalary    string `json:"gross_salary"`
	PerDaySalary   string `json:"per_day_salary"`
	OtherRecovery  string `json:"other_recovery"`
	Bonus          string `json:"bonus"`
	SalaryHold     string `json:"salary_hold"`
	TotalDeduction string `json:"total_deduction"`
	NetPayable     string `json:"net_payable"`
	TotalPayable   string `json:"total_payable"`

	Remark string `json:"remark"`
}

type PayslipResponse struct {
	PayslipID  string `json:"payslip_id"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	PhoneNumber   string `json:"phone_number"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"date_of_joining"`
	PFNumber      string `json:"pf_number"`
	PAN           string `json:"pan"`
	BankName      string `json:"bank_name"`
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`

	DaysInMonth  int `json:"days_in_month"`
	DaysPresent  int `json:"days_present"`
	TotalLeaves  int `json:"total_leaves"`
	PaidLeaves   int `json:"paid_leaves"`
	UnpaidLeaves int `json:"unpaid_leaves"`

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

	GrossSalary    string `json:"gross_salary"`
	OtherRecovery  string `json:"other_recovery"`
	Bonus          string `json:"bonus"`
	SalaryHold     string `json:"salary_hold"`
	TotalDeduction string `json:"total_deduction"`
	NetPayable     string `json:"net_payable"`
	TotalPayable   string `json:"total_payable"`

	Remark    string `json:"remark"`
	CreatedAt string `json:"created_at"`
}
