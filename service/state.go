package service

import (
	"context"
	"strconv"

	"Meadow/config"
	"Meadow/dao/cache"
	"Meadow/models"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// SessionStore 管理会话状态。实现必须整体读写 Session，
// 不同字段不允许出现撕裂的中间态。
type SessionStore interface {
	Get(ctx context.Context, uid int64) (models.Session, bool)
	Set(ctx context.Context, uid int64, sess models.Session)
	Clear(ctx context.Context, uid int64)
}

// NewSessionStore 配置了 redis 就用带过期的 redis 存储，否则退回进程内。
func NewSessionStore(conf *config.Config, rds *redis.Client) SessionStore {
	if rds != nil {
		return cache.NewSessionStorage(rds)
	}
	return NewMemorySessionStore()
}

type MemorySessionStore struct {
	sessions cmap.ConcurrentMap[string, models.Session]
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: cmap.New[models.Session](),
	}
}

func (m *MemorySessionStore) key(uid int64) string {
	return strconv.FormatInt(uid, 10)
}

func (m *MemorySessionStore) Get(_ context.Context, uid int64) (models.Session, bool) {
	return m.sessions.Get(m.key(uid))
}

func (m *MemorySessionStore) Set(_ context.Context, uid int64, sess models.Session) {
	m.sessions.Set(m.key(uid), sess)
}

func (m *MemorySessionStore) Clear(_ context.Context, uid int64) {
	m.sessions.Remove(m.key(uid))
}
