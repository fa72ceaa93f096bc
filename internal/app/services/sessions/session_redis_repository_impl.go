package sessions

import (
	"context"
	"time"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/app/services/shared/redis"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type SessionRedisRepository struct {
	RedisRepository redis.RedisRepository
}

func NewSessionRedisRepository(redisRepository redis.RedisRepository) SessionRepository {
	return &SessionRedisRepository{
		RedisRepository: redisRepository,
	}
}

func (r *SessionRedisRepository) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return r.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.ID, session, ttl)
}

func (r *SessionRedisRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (r *SessionRedisRepository) DeleteByID(ctx context.Context, sessionID string) error {
	return r.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
