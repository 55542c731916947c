package services

import (
	"context"
	"time"

	"StudioCRMGo/models"

	"github.com/go-redis/redis/v8"
)

// KV PIN门和未读计数使用的键值存储抽象（生产环境为Redis）。
// Get在键不存在时返回空串和nil错误。
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// RedisKV KV的Redis实现
type RedisKV struct {
	Client *redis.Client
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

func (r *RedisKV) Incr(ctx context.Context, key string) (int64, error) {
	return r.Client.Incr(ctx, key).Result()
}

// PinGate 敏感视图（财务、线索看板）的二级锁。
// 这是体验层面的软锁，不是鉴权边界：PIN是全局共享的固定值，
// 只控制前端渲染，服务端数据接口不受它保护。
// 启用标记持久保存（跨会话），解锁标记带会话TTL（会话过期自动回到锁定态）。
type PinGate struct {
	kv         KV
	secret     string
	sessionTTL time.Duration
}

func NewPinGate(kv KV, secret string, sessionTTL time.Duration) *PinGate {
	return &PinGate{kv: kv, secret: secret, sessionTTL: sessionTTL}
}

func enabledKey(uid string) string  { return "pin:enabled:" + uid }
func unlockedKey(uid string) string { return "pin:unlocked:" + uid }

// Status 返回当前PIN门状态
func (g *PinGate) Status(ctx context.Context, uid string) (models.PinStatusResponse, error) {
	enabled, err := g.kv.Get(ctx, enabledKey(uid))
	if err != nil {
		return models.PinStatusResponse{}, err
	}
	if enabled != "1" {
		return models.PinStatusResponse{}, nil
	}
	unlocked, err := g.kv.Get(ctx, unlockedKey(uid))
	if err != nil {
		return models.PinStatusResponse{}, err
	}
	return models.PinStatusResponse{Enabled: true, Unlocked: unlocked == "1"}, nil
}

// EnableProtection Disabled -> Enabled+Locked
func (g *PinGate) EnableProtection(ctx context.Context, uid string) error {
	if err := g.kv.Del(ctx, unlockedKey(uid)); err != nil {
		return err
	}
	return g.kv.Set(ctx, enabledKey(uid), "1", 0)
}

// DisableProtection Enabled+* -> Disabled
func (g *PinGate) DisableProtection(ctx context.Context, uid string) error {
	if err := g.kv.Del(ctx, unlockedKey(uid)); err != nil {
		return err
	}
	return g.kv.Del(ctx, enabledKey(uid))
}

// Unlock PIN匹配时 Enabled+Locked -> Enabled+Unlocked，否则保持锁定并报错
func (g *PinGate) Unlock(ctx context.Context, uid string, pin string) error {
	if pin != g.secret {
		return models.ErrPinMismatch
	}
	return g.kv.Set(ctx, unlockedKey(uid), "1", g.sessionTTL)
}

// Lock Enabled+Unlocked -> Enabled+Locked
func (g *PinGate) Lock(ctx context.Context, uid string) error {
	return g.kv.Del(ctx, unlockedKey(uid))
}
