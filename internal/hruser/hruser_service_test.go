package hruser

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	hrusererrors "github.com/PADMANABAN5/hrms/internal/hruser/errors"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, u *HRUser) error
	findByIDFn    func(ctx context.Context, id string) (*HRUser, error)
	findByEmailFn func(ctx context.Context, email string) (*HRUser, error)
	findAllFn     func(ctx context.Context) ([]HRUser, error)
	updateFn      func(ctx context.Context, u *HRUser) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, u *HRUser) error { return f.createFn(ctx, u) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*HRUser, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*HRUser, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]HRUser, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, u *HRUser) error   { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error   { return f.deleteFn(ctx, id) }

func TestCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	var saved *HRUser
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*HRUser, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, u *HRUser) error {
			saved = u
			return nil
		},
	}

	svc := NewService(repo)
	res, err := svc.Create(context.Background(), CreateHRUserRequest{
		Username: "priya",
		Email:    "priya@example.com",
		Password: "s3cretpass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "hr", res.Role)
	assert.NotNil(t, saved)
	assert.NotEqual(t, "s3cretpass", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("s3cretpass")))
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*HRUser, error) {
			return &HRUser{ID: uuid.New(), Email: email}, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateHRUserRequest{
		Username: "priya",
		Email:    "priya@example.com",
		Password: "s3cretpass",
	})

	assert.ErrorIs(t, err, hrusererrors.ErrEmailAlreadyUsed)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*HRUser, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)
	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, hrusererrors.ErrUserNotFound)
}

func TestToggleStatus(t *testing.T) {
	u := &HRUser{ID: uuid.New(), IsActive: true}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*HRUser, error) { return u, nil },
		updateFn:   func(ctx context.Context, got *HRUser) error { return nil },
	}

	svc := NewService(repo)
	err := svc.ToggleStatus(context.Background(), u.ID.String(), false)

	assert.NoError(t, err)
	assert.False(t, u.IsActive)
}
