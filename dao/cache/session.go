package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Meadow/models"

	"github.com/redis/go-redis/v9"
)

// 会话状态过期时间 - 30分钟
const sessionExpireAt = 30 * time.Minute

type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{rds}
}

func (s *SessionStorage) name(uid int64) string {
	return fmt.Sprintf("bot:session:%d", uid)
}

func (s *SessionStorage) Get(ctx context.Context, uid int64) (models.Session, bool) {
	raw, err := s.redis.Get(ctx, s.name(uid)).Bytes()
	if err != nil {
		return models.Session{}, false
	}

	var sess models.Session
	if json.Unmarshal(raw, &sess) != nil {
		return models.Session{}, false
	}
	return sess, true
}

func (s *SessionStorage) Set(ctx context.Context, uid int64, sess models.Session) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return
	}
	s.redis.Set(ctx, s.name(uid), raw, sessionExpireAt)
}

func (s *SessionStorage) Clear(ctx context.Context, uid int64) {
	s.redis.Del(ctx, s.name(uid))
}
