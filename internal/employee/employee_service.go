package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	employeeerrors "github.com/PADMANABAN5/hrms/internal/employee/errors"
	"github.com/PADMANABAN5/hrms/internal/shared/contextutil"
	"github.com/PADMANABAN5/hrms/internal/shared/counter"
)

const EmployeeOptionsKey = "employees:options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	doj, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		s.logger.Warn("create employee invalid date_of_joining",
			zap.String("date_of_joining", req.DateOfJoining),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	if req.EmployeeID == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_id")
		if err != nil {
			s.logger.Error("create employee generate id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeID = fmt.Sprintf("EMP-%06d", nextVal)
	}

	e := &Employee{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Designation:   req.Designation,
		DateOfJoining: doj,
		PFNumber:      req.PFNumber,
		PAN:           req.PAN,
		BankName:      req.BankName,
		IFSC:          req.IFSC,
		AccountNumber: req.AccountNumber,
		Status:        StatusActive,

		Basic:                  req.Basic,
		HRA:                    req.HRA,
		SpecialAllowance:       req.SpecialAllowance,
		Adhoc:                  req.Adhoc,
		FoodAllowance:          req.FoodAllowance,
		CommunicationAllowance: req.CommunicationAllowance,
		InternetAllowance:      req.InternetAllowance,

		PFDeduction:        req.PFDeduction,
		PTDeduction:        req.PTDeduction,
		TDSDeduction:       req.TDSDeduction,
		InsuranceDeduction: req.InsuranceDeduction,
		LWFDeduction:       req.LWFDeduction,
		ESIDeduction:       req.ESIDeduction,
		VPFDeduction:       req.VPFDeduction,
	}
	e.GrossSalary = e.Gross()

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.EmployeeID),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOption{
				ID:          e.ID.String(),
				EmployeeID:  e.EmployeeID,
				Name:        e.Name,
				Designation: e.Designation,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	e, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	doj, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.Name = req.Name
	e.Email = req.Email
	e.PhoneNumber = req.PhoneNumber
	e.Designation = req.Designation
	e.DateOfJoining = doj
	e.PFNumber = req.PFNumber
	e.PAN = req.PAN
	e.BankName = req.BankName
	e.IFSC = req.IFSC
	e.AccountNumber = req.AccountNumber
	if req.Status != "" {
		e.Status = req.Status
	}

	e.Basic = req.Basic
	e.HRA = req.HRA
	e.SpecialAllowance = req.SpecialAllowance
	e.Adhoc = req.Adhoc
	e.FoodAllowance = req.FoodAllowance
	e.CommunicationAllowance = req.CommunicationAllowance
	e.InternetAllowance = req.InternetAllowance

	e.PFDeduction = req.PFDeduction
	e.PTDeduction = req.PTDeduction
	e.TDSDeduction = req.TDSDeduction
	e.InsuranceDeduction = req.InsuranceDeduction
	e.LWFDeduction = req.LWFDeduction
	e.ESIDeduction = req.ESIDeduction
	e.VPFDeduction = req.VPFDeduction

	e.GrossSalary = e.Gross()

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.String("key", EmployeeOptionsKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		Designation:   e.Designation,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		PFNumber:      e.PFNumber,
		PAN:           e.PAN,
		BankName:      e.BankName,
		IFSC:          e.IFSC,
		AccountNumber: e.AccountNumber,
		Status:        e.Status,

		Basic:                  e.Basic.StringFixed(2),
		HRA:                    e.HRA.StringFixed(2),
		SpecialAllowance:       e.SpecialAllowance.StringFixed(2),
		Adhoc:                  e.Adhoc.StringFixed(2),
		FoodAllowance:          e.FoodAllowance.StringFixed(2),
		CommunicationAllowance: e.CommunicationAllowance.StringFixed(2),
		InternetAllowance:      e.InternetAllowance.StringFixed(2),

		PFDeduction:        e.PFDeduction.StringFixed(2),
		PTDeduction:        e.PTDeduction.StringFixed(2),
		TDSDeduction:       e.TDSDeduction.StringFixed(2),
		InsuranceDeduction: e.InsuranceDeduction.StringFixed(2),
		LWFDeduction:       e.LWFDeduction.StringFixed(2),
		ESIDeduction:       e.ESIDeduction.StringFixed(2),
		VPFDeduction:       e.VPFDeduction.StringFixed(2),

		GrossSalary: e.GrossSalary.StringFixed(2),
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
