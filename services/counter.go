package services

import (
	"context"
	"strconv"
)

// UnreadCounter 每用户未读通知计数，客户端按固定间隔轮询（约30秒），
// 读到的值允许在轮询窗口内过期
type UnreadCounter struct {
	kv KV
}

func NewUnreadCounter(kv KV) *UnreadCounter {
	return &UnreadCounter{kv: kv}
}

func unreadKey(uid string) string { return "unread:" + uid }

// Unread 读取当前未读数，键不存在视为0
func (c *UnreadCounter) Unread(ctx context.Context, uid string) (int64, error) {
	val, err := c.kv.Get(ctx, unreadKey(uid))
	if err != nil {
		return 0, err
	}
	if val == "" {
		return 0, nil
	}
	return strconv.ParseInt(val, 10, 64)
}

// Bump 未读数加一（由服务内部流程触发，如新通知产生时）
func (c *UnreadCounter) Bump(ctx context.Context, uid string) (int64, error) {
	return c.kv.Incr(ctx, unreadKey(uid))
}

// MarkRead 清零
func (c *UnreadCounter) MarkRead(ctx context.Context, uid string) error {
	return c.kv.Del(ctx, unreadKey(uid))
}
