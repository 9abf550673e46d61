package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}
