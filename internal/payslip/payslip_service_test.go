package payslip

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/PADMANABAN5/hrms/internal/document"
	"github.com/PADMANABAN5/hrms/internal/employee"
	"github.com/PADMANABAN5/hrms/internal/mailer"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
	paysliperrors "github.com/PADMANABAN5/hrms/internal/payslip/errors"
)

type fakeRepo struct {
	createFn       func(ctx context.Context, p *Payslip) error
	findByIDFn     func(ctx context.Context, id string) (*Payslip, error)
	findByPeriodFn func(ctx context.Context, employeeID string, month, year int) (*Payslip, error)
	findAllFn      func(ctx context.Context, filter ListFilter) ([]Payslip, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, p *Payslip) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payslip, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
	return f.findByPeriodFn(ctx, employeeID, month, year)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]Payslip, error) {
	return f.findAllFn(ctx, filter)
}

type memDraftStore struct {
	drafts map[string]*Draft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]*Draft)}
}

func (s *memDraftStore) Save(ctx context.Context, userID, employeeID string, draft *Draft) error {
	s.drafts[userID+":"+employeeID] = draft
	return nil
}

func (s *memDraftStore) Get(ctx context.Context, userID, employeeID string) (*Draft, error) {
	d, ok := s.drafts[userID+":"+employeeID]
	if !ok {
		return nil, paysliperrors.ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *memDraftStore) Delete(ctx context.Context, userID, employeeID string) error {
	delete(s.drafts, userID+":"+employeeID)
	return nil
}

type fakeEmployees struct {
	emp *employee.Employee
	err error
}

func (f *fakeEmployees) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return f.emp, f.err
}

type fakeLeaves struct {
	days int
	err  error
}

func (f *fakeLeaves) ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, error) {
	return f.days, f.err
}

type fakeRenderer struct {
	out []byte
	err error
}

func (f *fakeRenderer) Render(data document.PayslipData) ([]byte, error) {
	return f.out, f.err
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:            uuid.New(),
		EmployeeID:    "EMP-000001",
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		Designation:   "Engineer",
		DateOfJoining: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		Basic:         dec("20000"),
		HRA:           dec("8000"),
		PFDeduction:   dec("1800"),
	}
}

func notFoundRepo() *fakeRepo {
	return &fakeRepo{
		findByPeriodFn: func(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestStartDraftSeedsProfileAndLeaves(t *testing.T) {
	drafts := newMemDraftStore()
	svc := NewService(nil, notFoundRepo(), drafts, nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{days: 2}, nil, nil)

	res, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001",
		Month:      6,
		Year:       2024,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalLeaves)
	assert.Equal(t, 1, res.PaidLeaves)
	assert.Equal(t, 1, res.UnpaidLeaves)
	assert.Equal(t, 30, res.DaysInMonth)
	assert.Equal(t, 28, res.DaysPresent)
	assert.Equal(t, "28000.00", res.GrossSalary)

	saved, err := drafts.Get(context.Background(), "user-1", "EMP-000001")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Verma", saved.Employee.Name)
}

func TestStartDraftRejectsExistingPayslip(t *testing.T) {
	repo := &fakeRepo{
		findByPeriodFn: func(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
			return &Payslip{ID: uuid.New()}, nil
		},
	}
	svc := NewService(nil, repo, newMemDraftStore(), nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001",
		Month:      6,
		Year:       2024,
	})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipAlreadyGenerated)
}

func TestStartDraftRejectsInvalidPeriod(t *testing.T) {
	svc := NewService(nil, notFoundRepo(), newMemDraftStore(), nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001",
		Month:      13,
		Year:       2024,
	})

	assert.ErrorIs(t, err, paysliperrors.ErrInvalidPeriod)
}

func TestUpdateDraftRecomputes(t *testing.T) {
	drafts := newMemDraftStore()
	svc := NewService(nil, notFoundRepo(), drafts, nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{days: 0}, nil, nil)

	_, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001", Month: 6, Year: 2024,
	})
	assert.NoError(t, err)

	res, err := svc.UpdateDraft(context.Background(), "user-1", "EMP-000001", UpdateDraftRequest{
		TotalLeaves: strPtr("4"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, res.TotalLeaves)
	assert.Equal(t, 3, res.UnpaidLeaves)
	assert.Equal(t, 26, res.DaysPresent)
	// 28000/30 per day times 3 unpaid days.
	assert.Equal(t, "2800.00", res.OtherRecovery)
}

func TestUpdateDraftMovesPeriod(t *testing.T) {
	drafts := newMemDraftStore()
	svc := NewService(nil, notFoundRepo(), drafts, nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001", Month: 6, Year: 2024,
	})
	assert.NoError(t, err)

	_, err = svc.UpdateDraft(context.Background(), "user-1", "EMP-000001", UpdateDraftRequest{
		OtherRecovery: strPtr("750"),
	})
	assert.NoError(t, err)

	res, err := svc.UpdateDraft(context.Background(), "user-1", "EMP-000001", UpdateDraftRequest{
		Month: intPtr(2),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Month)
	assert.Equal(t, 29, res.DaysInMonth)
	// The typed recovery belongs to the old period.
	assert.Equal(t, "0.00", res.OtherRecovery)
}

func TestUpdateDraftPeriodConflict(t *testing.T) {
	drafts := newMemDraftStore()
	repo := &fakeRepo{
		findByPeriodFn: func(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
			if month == 7 {
				return &Payslip{ID: uuid.New()}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, repo, drafts, nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001", Month: 6, Year: 2024,
	})
	assert.NoError(t, err)

	_, err = svc.UpdateDraft(context.Background(), "user-1", "EMP-000001", UpdateDraftRequest{
		Month: intPtr(7),
	})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipAlreadyGenerated)
}

func TestUpdateDraftMissing(t *testing.T) {
	svc := NewService(nil, notFoundRepo(), newMemDraftStore(), nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.UpdateDraft(context.Background(), "user-1", "EMP-000001", UpdateDraftRequest{})

	assert.ErrorIs(t, err, paysliperrors.ErrDraftNotFound)
}

func TestGenerateWritesPayslipAndOutboxThenClearsDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	var created *Payslip
	repo := notFoundRepo()
	repo.createFn = func(ctx context.Context, p *Payslip) error {
		created = p
		return nil
	}

	drafts := newMemDraftStore()
	outbox := kafka.NewOutboxRepository(db)
	svc := NewService(db, repo, drafts, outbox,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{days: 2}, nil, nil)

	_, err = svc.StartDraft(context.Background(), "user-1", StartDraftRequest{
		EmployeeID: "EMP-000001", Month: 6, Year: 2024,
	})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := svc.Generate(context.Background(), "user-1", "priya", "EMP-000001", GenerateRequest{
		Remark: "June payroll",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NotNil(t, created)
	assert.Equal(t, "EMP-000001", created.EmployeeID)
	assert.Equal(t, "priya", created.GeneratedBy)
	assert.Equal(t, "June payroll", res.Remark)
	assert.Equal(t, 2, res.TotalLeaves)
	assert.Equal(t, "28000.00", res.GrossSalary)

	_, err = drafts.Get(context.Background(), "user-1", "EMP-000001")
	assert.ErrorIs(t, err, paysliperrors.ErrDraftNotFound)
}

func TestGenerateConflictSurfacesAsAlreadyGenerated(t *testing.T) {
	drafts := newMemDraftStore()
	drafts.Save(context.Background(), "user-1", "EMP-000001", sampleDraft())

	repo := &fakeRepo{
		findByPeriodFn: func(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
			return &Payslip{ID: uuid.New()}, nil
		},
	}
	svc := NewService(nil, repo, drafts, nil,
		&fakeEmployees{emp: testEmployee()}, &fakeLeaves{}, nil, nil)

	_, err := svc.Generate(context.Background(), "user-1", "priya", "EMP-000001", GenerateRequest{})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipAlreadyGenerated)
}

func TestDownloadReturnsCanonicalFilename(t *testing.T) {
	p := &Payslip{
		ID:         uuid.New(),
		EmployeeID: "EMP-000001",
		Month:      6,
		Year:       2024,
	}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payslip, error) { return p, nil },
	}
	svc := NewService(nil, repo, newMemDraftStore(), nil, nil, nil,
		&fakeRenderer{out: []byte("%PDF fake")}, nil)

	filename, pdf, err := svc.Download(context.Background(), p.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "payslip_EMP-000001_6_2024.pdf", filename)
	assert.Equal(t, []byte("%PDF fake"), pdf)
}

func TestEmailQueuesOutboxEventWithDefaultRecipient(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	p := &Payslip{
		ID:            uuid.New(),
		EmployeeID:    "EMP-000001",
		EmployeeEmail: "asha@example.com",
		Month:         6,
		Year:          2024,
	}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payslip, error) { return p, nil },
	}
	svc := NewService(db, repo, newMemDraftStore(), kafka.NewOutboxRepository(db),
		nil, nil, nil, nil)

	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = svc.Email(context.Background(), p.ID.String(), "", "priya")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliverEmailAttachesPDF(t *testing.T) {
	p := &Payslip{
		ID:            uuid.New(),
		EmployeeID:    "EMP-000001",
		EmployeeName:  "Asha Verma",
		EmployeeEmail: "asha@example.com",
		Month:         6,
		Year:          2024,
	}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Payslip, error) { return p, nil },
	}
	sender := &fakeMailer{}
	svc := NewService(nil, repo, newMemDraftStore(), nil, nil, nil,
		&fakeRenderer{out: []byte("%PDF fake")}, sender)

	err := svc.DeliverEmail(context.Background(), p.ID.String(), "asha@example.com", "Payslip for June 2024")

	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Len(t, msg.Attachments, 1)
	assert.Equal(t, "payslip_EMP-000001_6_2024.pdf", msg.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
}
