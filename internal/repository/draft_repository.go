package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

const draftKeyPrefix = "curricula:draft:"

// DraftRepository persists draft curricula as opaque JSON blobs in Redis.
// Drafts are resumption state for the authoring wizard, not a system of
// record; they expire after their TTL.
type DraftRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewDraftRepository constructs a draft repository.
func NewDraftRepository(client *redis.Client, logger *zap.Logger) *DraftRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DraftRepository{client: client, logger: logger}
}

// Get loads a draft by id.
func (r *DraftRepository) Get(ctx context.Context, id string) (*models.DraftCurriculum, error) {
	if r.client == nil {
		return nil, appErrors.Clone(appErrors.ErrCacheMiss, "draft storage is not available")
	}

	raw, err := r.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.Clone(appErrors.ErrCacheMiss, "draft not found")
		}
		return nil, fmt.Errorf("redis get draft %s: %w", id, err)
	}

	var draft models.DraftCurriculum
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft %s: %w", id, err)
	}
	return &draft, nil
}

// Set stores a draft with the given TTL.
func (r *DraftRepository) Set(ctx context.Context, draft *models.DraftCurriculum, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", draft.ID, err)
	}

	if err := r.client.Set(ctx, draftKeyPrefix+draft.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set draft %s: %w", draft.ID, err)
	}
	return nil
}

// Delete removes a draft.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	if r.client == nil {
		return nil
	}

	if err := r.client.Del(ctx, draftKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete draft %s: %w", id, err)
	}
	return nil
}
