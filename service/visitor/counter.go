package visitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
)

// Counter 日別来訪者カウンター
//
// コネクションキーをその日の重複排除セットに記録し、初回のみ
// 永続カウンタをインクリメントします。セットはプロセス内でのみ有効です。
type Counter struct {
	repo   repository.StatsRepository
	logger *zap.Logger

	day  string
	seen map[string]struct{}
	mu   sync.Mutex
}

// NewCounter 日別来訪者カウンターを生成します
func NewCounter(repo repository.StatsRepository, logger *zap.Logger) *Counter {
	return &Counter{
		repo:   repo,
		logger: logger.Named("visitor"),
		seen:   map[string]struct{}{},
	}
}

// Record 指定したコネクションの来訪を記録します
//
// 同一コネクションは1日1回のみカウントされます。
// 永続化エラーはログに残して握り潰します (コネクション処理を妨げない)。
func (c *Counter) Record(connKey string) {
	now := time.Now()
	today := model.DateKey(now)

	c.mu.Lock()
	c.rollover(today)
	if _, ok := c.seen[connKey]; ok {
		c.mu.Unlock()
		return
	}
	c.seen[connKey] = struct{}{}
	c.mu.Unlock()

	if err := c.repo.IncrementDailyVisitors(today); err != nil {
		c.logger.Warn("failed to increment daily visitors", zap.Error(err))
	}
}

// RolloverIfNeeded 日付が変わっていたら重複排除セットをリセットします
//
// スイープのtick毎に呼ばれる。深夜0時を跨いで接続し続けている
// コネクションは翌日に再カウントされ得る
func (c *Counter) RolloverIfNeeded(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover(model.DateKey(now))
}

// rollover c.muを保持して呼ぶこと
func (c *Counter) rollover(today string) {
	if c.day != today {
		c.day = today
		c.seen = map[string]struct{}{}
	}
}
