package presence

import (
	"errors"
	"sync"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/lthibault/jitterbug/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/service/visitor"
)

const (
	// inactivityTimeout この時間ハートビートが無いコネクションを追い出す
	inactivityTimeout = 5 * time.Minute
	// sweepInterval 定期スイープの間隔
	sweepInterval = time.Minute
)

var activeCustomersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "cloudkitchen",
	Name:      "active_customers",
})

// Metrics 管理ダッシュボード向けライブメトリクス
type Metrics struct {
	ActiveCustomers    int `json:"activeCustomers"`
	TotalVisitorsToday int `json:"totalVisitorsToday"`
}

// Tracker アクティブゲストトラッカー
//
// コネクションキーごとの最終アクティビティ時刻を保持し、
// アクティブ集合が変化する度にメトリクスをハブに発行します。
// 状態は単一プロセス内に閉じています (スケールアウト時は外部化が必要)。
type Tracker struct {
	hub      *hub.Hub
	repo     repository.StatsRepository
	visitors *visitor.Counter
	logger   *zap.Logger

	entries      map[string]time.Time
	lastVisitors int
	mu           sync.Mutex

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewTracker アクティブゲストトラッカーを生成します
func NewTracker(hub *hub.Hub, repo repository.StatsRepository, visitors *visitor.Counter, logger *zap.Logger) *Tracker {
	return &Tracker{
		hub:      hub,
		repo:     repo,
		visitors: visitors,
		logger:   logger.Named("presence"),
		entries:  map[string]time.Time{},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start 定期スイープを開始します
func (t *Tracker) Start() {
	go func() {
		defer close(t.done)
		ticker := jitterbug.New(sweepInterval, &jitterbug.Norm{Stdev: time.Second})
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.onTick(time.Now())
			case <-t.stop:
				return
			}
		}
	}()
}

// Stop 定期スイープを停止します
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

// Touch 指定したコネクションのアクティビティを記録します
//
// 未登録のコネクションはアクティブ集合に追加され、メトリクスが発行されます。
// 登録済みの場合は最終アクティビティ時刻のみ更新します。
func (t *Tracker) Touch(connKey string) {
	t.mu.Lock()
	_, ok := t.entries[connKey]
	t.entries[connKey] = time.Now()
	t.mu.Unlock()

	if !ok {
		t.publishMetrics()
	}
}

// Remove 指定したコネクションをアクティブ集合から削除します
func (t *Tracker) Remove(connKey string) {
	t.mu.Lock()
	_, ok := t.entries[connKey]
	delete(t.entries, connKey)
	t.mu.Unlock()

	if ok {
		t.publishMetrics()
	}
}

// Count 現在のアクティブコネクション数
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// onTick タイムアウトしたエントリを追い出し、日付の切り替わりを確認します
func (t *Tracker) onTick(now time.Time) {
	deadline := now.Add(-inactivityTimeout)

	t.mu.Lock()
	evicted := 0
	for key, lastSeen := range t.entries {
		if lastSeen.Before(deadline) {
			delete(t.entries, key)
			evicted++
		}
	}
	t.mu.Unlock()

	if t.visitors != nil {
		t.visitors.RolloverIfNeeded(now)
	}

	if evicted > 0 {
		t.logger.Debug("evicted inactive guests", zap.Int("count", evicted))
		t.publishMetrics()
	}
}

// Metrics 現在のメトリクスのスナップショットを取得します
//
// 永続化された来訪者数の読み出しはベストエフォートで、
// 失敗時は最後に読めた値を使います。
func (t *Tracker) Metrics() Metrics {
	visitors := t.readVisitorsToday()

	t.mu.Lock()
	defer t.mu.Unlock()
	return Metrics{
		ActiveCustomers:    len(t.entries),
		TotalVisitorsToday: visitors,
	}
}

func (t *Tracker) readVisitorsToday() int {
	stats, err := t.repo.GetStats(model.DateKey(time.Now()))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			t.logger.Warn("failed to read visitor stats", zap.Error(err))
			t.mu.Lock()
			defer t.mu.Unlock()
			return t.lastVisitors
		}
		return 0
	}

	t.mu.Lock()
	t.lastVisitors = stats.DailyVisitors
	t.mu.Unlock()
	return stats.DailyVisitors
}

func (t *Tracker) publishMetrics() {
	m := t.Metrics()
	activeCustomersGauge.Set(float64(m.ActiveCustomers))
	t.hub.Publish(hub.Message{
		Name: event.MetricsUpdated,
		Fields: hub.Fields{
			"metrics": m,
		},
	})
}
