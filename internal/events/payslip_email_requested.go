package events

import "time"

const PayslipEmailRequestedTopic = "hr.payslip.email.requested.v1"

type PayslipEmailRequestedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	PayslipID      string    `json:"payslip_id"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	EmployeeName   string    `json:"employee_name"`
	RequestedBy    string    `json:"requested_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
