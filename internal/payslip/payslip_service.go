package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PADMANABAN5/hrms/internal/document"
	"github.com/PADMANABAN5/hrms/internal/employee"
	"github.com/PADMANABAN5/hrms/internal/events"
	"github.com/PADMANABAN5/hrms/internal/mailer"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
	paysliperrors "github.com/PADMANABAN5/hrms/internal/payslip/errors"
	"github.com/PADMANABAN5/hrms/internal/shared/contextutil"
)

// EmployeeProvider supplies the employee master record a draft is seeded
// from.
type EmployeeProvider interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

// LeaveProvider supplies the approved leave day count for a period.
type LeaveProvider interface {
	ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, error)
}

type Service interface {
	StartDraft(ctx context.Context, userID string, req StartDraftRequest) (DraftResponse, error)
	GetDraft(ctx context.Context, userID, employeeID string) (DraftResponse, error)
	UpdateDraft(ctx context.Context, userID, employeeID string, patch UpdateDraftRequest) (DraftResponse, error)
	Generate(ctx context.Context, userID, username, employeeID string, req GenerateRequest) (PayslipResponse, error)

	GetAll(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	Download(ctx context.Context, id string) (string, []byte, error)
	Email(ctx context.Context, id, recipient, requestedBy string) error
	DeliverEmail(ctx context.Context, payslipID, recipient, subject string) error
	Export(ctx context.Context, filter ListFilter) ([]byte, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	drafts    DraftStore
	outbox    kafka.OutboxRepository
	employees EmployeeProvider
	leaves    LeaveProvider
	renderer  document.Renderer
	mail      mailer.Mailer
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	drafts DraftStore,
	outbox kafka.OutboxRepository,
	employees EmployeeProvider,
	leaves LeaveProvider,
	renderer document.Renderer,
	mail mailer.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		drafts:    drafts,
		outbox:    outbox,
		employees: employees,
		leaves:    leaves,
		renderer:  renderer,
		mail:      mail,
		logger:    l,
	}
}

func (s *service) StartDraft(ctx context.Context, userID string, req StartDraftRequest) (DraftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("start draft requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if DaysInMonth(req.Month, req.Year) == 0 {
		return DraftResponse{}, paysliperrors.ErrInvalidPeriod
	}

	if _, err := s.repo.FindByPeriod(ctx, req.EmployeeID, req.Month, req.Year); err == nil {
		return DraftResponse{}, paysliperrors.ErrPayslipAlreadyGenerated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DraftResponse{}, err
	}

	emp, err := s.employees.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return DraftResponse{}, err
	}

	totalLeaves := 0
	if s.leaves != nil {
		totalLeaves, err = s.leaves.ApprovedDaysInMonth(ctx, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			s.logger.Warn("leave lookup failed, seeding draft with zero leaves",
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err),
			)
			totalLeaves = 0
		}
	}

	draft := &Draft{
		Employee: EmployeeSnapshot{
			EmployeeID:    emp.EmployeeID,
			Name:          emp.Name,
			Email:         emp.Email,
			PhoneNumber:   emp.PhoneNumber,
			Designation:   emp.Designation,
			DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
			PFNumber:      emp.PFNumber,
			PAN:           emp.PAN,
			BankName:      emp.BankName,
			IFSC:          emp.IFSC,
			AccountNumber: emp.AccountNumber,
		},
		Month: req.Month,
		Year:  req.Year,
		Profile: SalaryProfile{
			Basic:                  emp.Basic,
			HRA:                    emp.HRA,
			SpecialAllowance:       emp.SpecialAllowance,
			Adhoc:                  emp.Adhoc,
			FoodAllowance:          emp.FoodAllowance,
			CommunicationAllowance: emp.CommunicationAllowance,
			InternetAllowance:      emp.InternetAllowance,

			PFDeduction:        emp.PFDeduction,
			PTDeduction:        emp.PTDeduction,
			TDSDeduction:       emp.TDSDeduction,
			InsuranceDeduction: emp.InsuranceDeduction,
			LWFDeduction:       emp.LWFDeduction,
			ESIDeduction:       emp.ESIDeduction,
			VPFDeduction:       emp.VPFDeduction,
		},
		TotalLeaves: totalLeaves,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.drafts.Save(ctx, userID, req.EmployeeID, draft); err != nil {
		s.logger.Error("failed to save draft", zap.Error(err))
		return DraftResponse{}, err
	}

	return mapDraftResponse(draft), nil
}

func (s *service) GetDraft(ctx context.Context, userID, employeeID string) (DraftResponse, error) {
	draft, err := s.drafts.Get(ctx, userID, employeeID)
	if err != nil {
		return DraftResponse{}, err
	}
	return mapDraftResponse(draft), nil
}

func (s *service) UpdateDraft(ctx context.Context, userID, employeeID string, patch UpdateDraftRequest) (DraftResponse, error) {
	draft, err := s.drafts.Get(ctx, userID, employeeID)
	if err != nil {
		return DraftResponse{}, err
	}

	oldMonth, oldYear := draft.Month, draft.Year
	draft.Apply(patch)

	// Moving the draft to a new period re-opens the duplicate question.
	if draft.Month != oldMonth || draft.Year != oldYear {
		if _, err := s.repo.FindByPeriod(ctx, employeeID, draft.Month, draft.Year); err == nil {
			return DraftResponse{}, paysliperrors.ErrPayslipAlreadyGenerated
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return DraftResponse{}, err
		}
	}

	if err := s.drafts.Save(ctx, userID, employeeID, draft); err != nil {
		s.logger.Error("failed to save draft", zap.Error(err))
		return DraftResponse{}, err
	}

	return mapDraftResponse(draft), nil
}

func (s *service) Generate(ctx context.Context, userID, username, employeeID string, req GenerateRequest) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	draft, err := s.drafts.Get(ctx, userID, employeeID)
	if err != nil {
		return PayslipResponse{}, err
	}

	if req.Remark != "" {
		draft.Remark = req.Remark
	}

	if _, err := s.repo.FindByPeriod(ctx, employeeID, draft.Month, draft.Year); err == nil {
		return PayslipResponse{}, paysliperrors.ErrPayslipAlreadyGenerated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, err
	}

	derived := draft.Derive()
	p := buildPayslip(draft, derived)
	p.ID = uuid.New()
	p.GeneratedBy = username
	p.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("generate persist failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PayslipGeneratedEvent{
			EventType:  "payslip_generated",
			RequestID:  rid,
			PayslipID:  p.ID.String(),
			EmployeeID: p.EmployeeID,
			Month:      p.Month,
			Year:       p.Year,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayslipResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   p.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate outbox persist failed", zap.Error(err))
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayslipResponse{}, err
	}

	if err := s.drafts.Delete(ctx, userID, employeeID); err != nil {
		s.logger.Warn("failed to clear draft after generate",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}

	s.logger.Info("payslip generated",
		zap.String("request_id", rid),
		zap.String("payslip_id", p.ID.String()),
		zap.String("employee_id", p.EmployeeID),
		zap.Int("month", p.Month),
		zap.Int("year", p.Year),
	)

	return mapPayslipResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PayslipResponse, error) {
	payslips, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapPayslipResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapPayslipResponse(*p), nil
}

func (s *service) Download(ctx context.Context, id string) (string, []byte, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, mapRepositoryError(err)
	}

	pdf, err := s.renderer.Render(toDocumentData(*p))
	if err != nil {
		s.logger.Error("payslip render failed",
			zap.String("payslip_id", id),
			zap.Error(err),
		)
		return "", nil, paysliperrors.ErrRenderFailed
	}

	return document.Filename(p.EmployeeID, p.Month, p.Year), pdf, nil
}

// Email queues delivery through the outbox; the consumer renders and
// sends asynchronously.
func (s *service) Email(ctx context.Context, id, recipient, requestedBy string) error {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if recipient == "" {
		recipient = p.EmployeeEmail
	}

	event := events.PayslipEmailRequestedEvent{
		EventType:      "payslip_email_requested",
		RequestID:      rid,
		PayslipID:      p.ID.String(),
		RecipientEmail: recipient,
		Subject:        fmt.Sprintf("Payslip for %s %d", time.Month(p.Month).String(), p.Year),
		EmployeeName:   p.EmployeeName,
		RequestedBy:    requestedBy,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payslip",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayslipEmailRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("email outbox persist failed",
			zap.String("payslip_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("payslip email queued",
		zap.String("payslip_id", id),
		zap.String("recipient", recipient),
	)
	return nil
}

// DeliverEmail renders the payslip and sends it with the PDF attached.
// Called from the email consumer.
func (s *service) DeliverEmail(ctx context.Context, payslipID, recipient, subject string) error {
	p, err := s.repo.FindByID(ctx, payslipID)
	if err != nil {
		return mapRepositoryError(err)
	}

	pdf, err := s.renderer.Render(toDocumentData(*p))
	if err != nil {
		return paysliperrors.ErrRenderFailed
	}

	msg := mailer.Message{
		To:      recipient,
		Subject: subject,
		Body: fmt.Sprintf(
			"Dear %s,\n\nPlease find attached your payslip for %s %d.\n\nRegards,\nHR Team",
			p.EmployeeName, time.Month(p.Month).String(), p.Year,
		),
		Attachments: []mailer.Attachment{{
			Filename:    document.Filename(p.EmployeeID, p.Month, p.Year),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		return paysliperrors.ErrMailFailed
	}
	return nil
}

func buildPayslip(d *Draft, derived Derived) *Payslip {
	return &Payslip{
		EmployeeID: d.Employee.EmployeeID,
		Month:      d.Month,
		Year:       d.Year,

		EmployeeName:  d.Employee.Name,
		EmployeeEmail: d.Employee.Email,
		PhoneNumber:   d.Employee.PhoneNumber,
		Designation:   d.Employee.Designation,
		DateOfJoining: d.Employee.DateOfJoining,
		PFNumber:      d.Employee.PFNumber,
		PAN:           d.Employee.PAN,
		BankName:      d.Employee.BankName,
		IFSC:          d.Employee.IFSC,
		AccountNumber: d.Employee.AccountNumber,

		DaysInMonth:  derived.DaysInMonth,
		DaysPresent:  derived.DaysPresent,
		TotalLeaves:  d.TotalLeaves,
		PaidLeaves:   derived.PaidLeaves,
		UnpaidLeaves: derived.UnpaidLeaves,

		Basic:                  d.Profile.Basic,
		HRA:                    d.Profile.HRA,
		SpecialAllowance:       d.Profile.SpecialAllowance,
		Adhoc:                  d.Profile.Adhoc,
		FoodAllowance:          d.Profile.FoodAllowance,
		CommunicationAllowance: d.Profile.CommunicationAllowance,
		InternetAllowance:      d.Profile.InternetAllowance,

		PFDeduction:        d.Profile.PFDeduction,
		PTDeduction:        d.Profile.PTDeduction,
		TDSDeduction:       d.Profile.TDSDeduction,
		InsuranceDeduction: d.Profile.InsuranceDeduction,
		LWFDeduction:       d.Profile.LWFDeduction,
		ESIDeduction:       d.Profile.ESIDeduction,
		VPFDeduction:       d.Profile.VPFDeduction,

		GrossSalary:    derived.GrossSalary,
		PerDaySalary:   derived.PerDaySalary,
		OtherRecovery:  derived.OtherRecovery,
		Bonus:          d.Bonus,
		SalaryHold:     d.SalaryHold,
		TotalDeduction: derived.TotalDeduction,
		NetPayable:     derived.NetPayable,
		TotalPayable:   derived.TotalPayable,

		Remark: d.Remark,
	}
}

func mapDraftResponse(d *Draft) DraftResponse {
	derived := d.Derive()

	return DraftResponse{
		Employee: d.Employee,
		Month:    d.Month,
		Year:     d.Year,

		TotalLeaves:  d.TotalLeaves,
		PaidLeaves:   derived.PaidLeaves,
		UnpaidLeaves: derived.UnpaidLeaves,
		DaysInMonth:  derived.DaysInMonth,
		DaysPresent:  derived.DaysPresent,

		Basic:                  d.Profile.Basic.StringFixed(2),
		HRA:                    d.Profile.HRA.StringFixed(2),
		SpecialAllowance:       d.Profile.SpecialAllowance.StringFixed(2),
		Adhoc:                  d.Profile.Adhoc.StringFixed(2),
		FoodAllowance:          d.Profile.FoodAllowance.StringFixed(2),
		CommunicationAllowance: d.Profile.CommunicationAllowance.StringFixed(2),
		InternetAllowance:      d.Profile.InternetAllowance.StringFixed(2),

		PFDeduction:        d.Profile.PFDeduction.StringFixed(2),
		PTDeduction:        d.Profile.PTDeduction.StringFixed(2),
		TDSDeduction:       d.Profile.TDSDeduction.StringFixed(2),
		InsuranceDeduction: d.Profile.InsuranceDeduction.StringFixed(2),
		LWFDeduction:       d.Profile.LWFDeduction.StringFixed(2),
		ESIDeduction:       d.Profile.ESIDeduction.StringFixed(2),
		VPFDeduction:       d.Profile.VPFDeduction.StringFixed(2),

		GrossSalary:    derived.GrossSalary.StringFixed(2),
		PerDaySalary:   derived.PerDaySalary.StringFixed(2),
		OtherRecovery:  derived.OtherRecovery.StringFixed(2),
		Bonus:          d.Bonus.StringFixed(2),
		SalaryHold:     d.SalaryHold.StringFixed(2),
		TotalDeduction: derived.TotalDeduction.StringFixed(2),
		NetPayable:     derived.NetPayable.StringFixed(2),
		TotalPayable:   derived.TotalPayable.StringFixed(2),

		Remark: d.Remark,
	}
}

func mapPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		PayslipID:  p.ID.String(),
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		Year:       p.Year,

		EmployeeName:  p.EmployeeName,
		EmployeeEmail: p.EmployeeEmail,
		PhoneNumber:   p.PhoneNumber,
		Designation:   p.Designation,
		DateOfJoining: p.DateOfJoining,
		PFNumber:      p.PFNumber,
		PAN:           p.PAN,
		BankName:      p.BankName,
		IFSC:          p.IFSC,
		AccountNumber: p.AccountNumber,

		DaysInMonth:  p.DaysInMonth,
		DaysPresent:  p.DaysPresent,
		TotalLeaves:  p.TotalLeaves,
		PaidLeaves:   p.PaidLeaves,
		UnpaidLeaves: p.UnpaidLeaves,

		Basic:                  p.Basic.StringFixed(2),
		HRA:                    p.HRA.StringFixed(2),
		SpecialAllowance:       p.SpecialAllowance.StringFixed(2),
		Adhoc:                  p.Adhoc.StringFixed(2),
		FoodAllowance:          p.FoodAllowance.StringFixed(2),
		CommunicationAllowance: p.CommunicationAllowance.StringFixed(2),
		InternetAllowance:      p.InternetAllowance.StringFixed(2),

		PFDeduction:        p.PFDeduction.StringFixed(2),
		PTDeduction:        p.PTDeduction.StringFixed(2),
		TDSDeduction:       p.TDSDeduction.StringFixed(2),
		InsuranceDeduction: p.InsuranceDeduction.StringFixed(2),
		LWFDeduction:       p.LWFDeduction.StringFixed(2),
		ESIDeduction:       p.ESIDeduction.StringFixed(2),
		VPFDeduction:       p.VPFDeduction.StringFixed(2),

		GrossSalary:    p.GrossSalary.StringFixed(2),
		OtherRecovery:  p.OtherRecovery.StringFixed(2),
		Bonus:          p.Bonus.StringFixed(2),
		SalaryHold:     p.SalaryHold.StringFixed(2),
		TotalDeduction: p.TotalDeduction.StringFixed(2),
		NetPayable:     p.NetPayable.StringFixed(2),
		TotalPayable:   p.TotalPayable.StringFixed(2),

		Remark:    p.Remark,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toDocumentData(p Payslip) document.PayslipData {
	totalPayable, _ := p.TotalPayable.Float64()

	return document.PayslipData{
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		EmployeeEmail: p.EmployeeEmail,
		Designation:   p.Designation,
		DateOfJoining: p.DateOfJoining,
		PFNumber:      p.PFNumber,
		PAN:           p.PAN,
		BankName:      p.BankName,
		IFSC:          p.IFSC,
		AccountNumber: p.AccountNumber,

		Month: p.Month,
		Year:  p.Year,

		DaysInMonth:  p.DaysInMonth,
		DaysPresent:  p.DaysPresent,
		TotalLeaves:  p.TotalLeaves,
		PaidLeaves:   p.PaidLeaves,
		UnpaidLeaves: p.UnpaidLeaves,

		Earnings: []document.LineItem{
			{Label: "Basic", Amount: p.Basic.StringFixed(2)},
			{Label: "HRA", Amount: p.HRA.StringFixed(2)},
			{Label: "Special Allowance", Amount: p.SpecialAllowance.StringFixed(2)},
			{Label: "Adhoc", Amount: p.Adhoc.StringFixed(2)},
			{Label: "Food Allowance", Amount: p.FoodAllowance.StringFixed(2)},
			{Label: "Communication Allowance", Amount: p.CommunicationAllowance.StringFixed(2)},
			{Label: "Internet Allowance", Amount: p.InternetAllowance.StringFixed(2)},
		},
		Deductions: []document.LineItem{
			{Label: "PF", Amount: p.PFDeduction.StringFixed(2)},
			{Label: "PT", Amount: p.PTDeduction.StringFixed(2)},
			{Label: "TDS", Amount: p.TDSDeduction.StringFixed(2)},
			{Label: "Insurance", Amount: p.InsuranceDeduction.StringFixed(2)},
			{Label: "LWF", Amount: p.LWFDeduction.StringFixed(2)},
			{Label: "ESI", Amount: p.ESIDeduction.StringFixed(2)},
			{Label: "VPF", Amount: p.VPFDeduction.StringFixed(2)},
			{Label: "Other Recovery", Amount: p.OtherRecovery.StringFixed(2)},
		},

		GrossSalary:       p.GrossSalary.StringFixed(2),
		TotalDeduction:    p.TotalDeduction.StringFixed(2),
		NetPayable:        p.NetPayable.StringFixed(2),
		TotalPayable:      p.TotalPayable.StringFixed(2),
		TotalPayableValue: totalPayable,

		Remark: p.Remark,
	}
}
