package payslip

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	paysliperrors "github.com/PADMANABAN5/hrms/internal/payslip/errors"
)

func TestDraftStoreSaveAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewDraftStore(db)

	draft := sampleDraft()
	draft.UpdatedAt = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	data, err := json.Marshal(draft)
	assert.NoError(t, err)

	key := "payslip:draft:user-1:EMP-000001"
	mock.ExpectSet(key, data, 30*time.Minute).SetVal("OK")
	assert.NoError(t, store.Save(context.Background(), "user-1", "EMP-000001", draft))

	mock.ExpectGet(key).SetVal(string(data))
	got, err := store.Get(context.Background(), "user-1", "EMP-000001")
	assert.NoError(t, err)
	assert.Equal(t, draft.Employee.EmployeeID, got.Employee.EmployeeID)
	assert.Equal(t, draft.TotalLeaves, got.TotalLeaves)
	assert.True(t, got.Profile.Basic.Equal(draft.Profile.Basic))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftStoreMissReturnsDraftNotFound(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewDraftStore(db)

	mock.ExpectGet("payslip:draft:user-1:EMP-000009").RedisNil()

	_, err := store.Get(context.Background(), "user-1", "EMP-000009")
	assert.ErrorIs(t, err, paysliperrors.ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftStoreDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewDraftStore(db)

	mock.ExpectDel("payslip:draft:user-1:EMP-000001").SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), "user-1", "EMP-000001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftStoreKeysAreScopedPerUser(t *testing.T) {
	assert.NotEqual(t,
		draftKey("user-1", "EMP-000001"),
		draftKey("user-2", "EMP-000001"),
	)
}
