package mahjong

import (
	"context"
	"time"
)

const DefaultActionTimeout = 15 * time.Second

// Timer 行动计时, 为每次请求派生截止时间
type Timer struct {
	timeout time.Duration
}

func NewTimer(timeout time.Duration) *Timer {
	if timeout <= 0 {
		timeout = DefaultActionTimeout
	}
	return &Timer{timeout: timeout}
}

func (t *Timer) Timeout() time.Duration {
	return t.timeout
}

// ActionContext 本次行动的超时上下文
func (t *Timer) ActionContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, t.timeout)
}
