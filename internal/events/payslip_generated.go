package events

import "time"

const PayslipGeneratedTopic = "hr.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayslipID  string    `json:"payslip_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	OccurredAt time.Time `json:"occurred_at"`
}
