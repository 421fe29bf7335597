package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

const noticeListTTL = 30 * time.Second

// NoticeService handles notice lifecycle. Created notices are fanned out
// on a Redis channel for the live stream; the listing is served through a
// short-lived cache.
type NoticeService struct {
	notices NoticeStore
	rdb     *redis.Client
	log     zerolog.Logger
}

// NewNoticeService creates a new NoticeService. rdb may be nil, which
// disables the cache and the fan-out.
func NewNoticeService(notices NoticeStore, rdb *redis.Client, log zerolog.Logger) *NoticeService {
	return &NoticeService{
		notices: notices,
		rdb:     rdb,
		log:     log.With().Str("component", "notice_service").Logger(),
	}
}

// Create stores a notice scoped to exactly one of a class or a standard.
// Both set, or neither set, is rejected before anything is written.
func (s *NoticeService) Create(ctx context.Context, req model.CreateNoticeRequest, createdBy uuid.UUID) (*model.Notice, error) {
	if (req.ClassID == nil) == (req.Standard == nil) {
		return nil, ErrInvalidNoticeScope
	}

	notice := &model.Notice{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   createdBy,
		ClassID:     req.ClassID,
		Standard:    req.Standard,
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, notice)
	return notice, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.notices.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateList(ctx)
	return nil
}

// List retrieves all notices, newest first, through the cache.
func (s *NoticeService) List(ctx context.Context) ([]model.Notice, error) {
	key := config.CacheKey.NoticeListKey()

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var notices []model.Notice
			if err := json.Unmarshal([]byte(raw), &notices); err == nil {
				return notices, nil
			}
		}
	}

	notices, err := s.notices.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(notices); err == nil {
			if err := s.rdb.Set(ctx, key, raw, noticeListTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("notice list cache write failed")
			}
		}
	}
	return notices, nil
}

// invalidateList drops the cached listing after a mutation. Best effort; a
// stale entry expires on its own within the TTL.
func (s *NoticeService) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.NoticeListKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("notice list cache invalidation failed")
	}
}

// publish fans the notice out to live stream subscribers. Best effort; the
// notice is already persisted.
func (s *NoticeService) publish(ctx context.Context, notice *model.Notice) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(notice)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.NoticeChannel(), raw).Err(); err != nil {
		s.log.Warn().Err(err).Msg("notice publish failed")
	}
}
