package hruser

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	hrusererrors "github.com/PADMANABAN5/hrms/internal/hruser/errors"
	"github.com/PADMANABAN5/hrms/internal/rbac"
	"github.com/PADMANABAN5/hrms/internal/shared/contextutil"
)

type Service interface {
	Create(ctx context.Context, req CreateHRUserRequest) (HRUserResponse, error)
	GetAll(ctx context.Context) ([]HRUserResponse, error)
	GetByID(ctx context.Context, id string) (HRUserResponse, error)
	Update(ctx context.Context, id string, req UpdateHRUserRequest) (HRUserResponse, error)
	ToggleStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHRUserRequest) (HRUserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating hr user",
		zap.String("username", req.Username),
		zap.String("email", req.Email),
	)

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return HRUserResponse{}, hrusererrors.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return HRUserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return HRUserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = rbac.RoleHR
	}

	u := &HRUser{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create hr user", zap.Error(err))
		return HRUserResponse{}, mapDBError(err)
	}

	l.Info("hr user created", zap.String("email", u.Email))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]HRUserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]HRUserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (HRUserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HRUserResponse{}, hrusererrors.ErrUserNotFound
		}
		return HRUserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHRUserRequest) (HRUserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HRUserResponse{}, hrusererrors.ErrUserNotFound
		}
		return HRUserResponse{}, err
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Role != "" {
		u.Role = req.Role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return HRUserResponse{}, mapDBError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hrusererrors.ErrUserNotFound
		}
		l.Error("failed to find hr user", zap.Error(err))
		return err
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update hr user status", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hrusererrors.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func mapToResponse(u HRUser) HRUserResponse {
	return HRUserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
