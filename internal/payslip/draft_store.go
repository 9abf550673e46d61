package payslip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	paysliperrors "github.com/PADMANABAN5/hrms/internal/payslip/errors"
)

const (
	draftKeyPrefix = "payslip:draft:"
	draftTTL       = 30 * time.Minute
)

// DraftStore keeps per-user payslip drafts with a sliding expiry.
type DraftStore interface {
	Save(ctx context.Context, userID, employeeID string, draft *Draft) error
	Get(ctx context.Context, userID, employeeID string) (*Draft, error)
	Delete(ctx context.Context, userID, employeeID string) error
}

type redisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftStore(rdb *redis.Client) DraftStore {
	return &redisDraftStore{rdb: rdb, ttl: draftTTL}
}

func draftKey(userID, employeeID string) string {
	return fmt.Sprintf("%s%s:%s", draftKeyPrefix, userID, employeeID)
}

func (s *redisDraftStore) Save(ctx context.Context, userID, employeeID string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(userID, employeeID), data, s.ttl).Err()
}

func (s *redisDraftStore) Get(ctx context.Context, userID, employeeID string) (*Draft, error) {
	data, err := s.rdb.Get(ctx, draftKey(userID, employeeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, paysliperrors.ErrDraftNotFound
		}
		return nil, err
	}

	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *redisDraftStore) Delete(ctx context.Context, userID, employeeID string) error {
	return s.rdb.Del(ctx, draftKey(userID, employeeID)).Err()
}
