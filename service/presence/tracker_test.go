package presence

import (
	"sync"
	"testing"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/service/visitor"
)

type statsRepoMock struct {
	mu       sync.Mutex
	visitors map[string]int
}

func newStatsRepoMock() *statsRepoMock {
	return &statsRepoMock{visitors: map[string]int{}}
}

func (m *statsRepoMock) IncrementDailyVisitors(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visitors[date]++
	return nil
}

func (m *statsRepoMock) IncrementTotalOrders(string) error { return nil }

func (m *statsRepoMock) GetStats(date string) (*model.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.visitors[date]; !ok {
		return nil, repository.ErrNotFound
	}
	return &model.Stats{Date: date, DailyVisitors: m.visitors[date]}, nil
}

func setupTracker(t *testing.T) (*Tracker, hub.Subscription) {
	t.Helper()
	h := hub.New()
	repo := newStatsRepoMock()
	tracker := NewTracker(h, repo, visitor.NewCounter(repo, zap.NewNop()), zap.NewNop())
	return tracker, h.Subscribe(10, event.MetricsUpdated)
}

func receiveMetrics(t *testing.T, sub hub.Subscription) Metrics {
	t.Helper()
	select {
	case msg := <-sub.Receiver:
		return msg.Fields["metrics"].(Metrics)
	case <-time.After(time.Second):
		require.FailNow(t, "timeout: no metrics update")
		return Metrics{}
	}
}

func assertNoMetrics(t *testing.T, sub hub.Subscription) {
	t.Helper()
	select {
	case <-sub.Receiver:
		require.FailNow(t, "unexpected metrics update")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTracker_Touch(t *testing.T) {
	t.Parallel()

	tracker, sub := setupTracker(t)

	tracker.Touch("conn1")
	m := receiveMetrics(t, sub)
	assert.Equal(t, 1, m.ActiveCustomers)

	// 既存コネクションのハートビートは時刻更新のみで発行しない
	tracker.Touch("conn1")
	assertNoMetrics(t, sub)

	tracker.Touch("conn2")
	m = receiveMetrics(t, sub)
	assert.Equal(t, 2, m.ActiveCustomers)
}

func TestTracker_Remove(t *testing.T) {
	t.Parallel()

	tracker, sub := setupTracker(t)

	tracker.Touch("conn1")
	receiveMetrics(t, sub)

	tracker.Remove("conn1")
	m := receiveMetrics(t, sub)
	assert.Equal(t, 0, m.ActiveCustomers)

	// 未登録コネクションの削除は発行しない
	tracker.Remove("conn1")
	assertNoMetrics(t, sub)
}

func TestTracker_Eviction(t *testing.T) {
	t.Parallel()

	tracker, sub := setupTracker(t)

	tracker.Touch("active")
	receiveMetrics(t, sub)
	tracker.Touch("stale")
	receiveMetrics(t, sub)

	// タイムアウト内はどちらも残る
	tracker.onTick(time.Now())
	assertNoMetrics(t, sub)
	assert.Equal(t, 2, tracker.Count())

	// staleだけタイムアウトさせる
	tracker.mu.Lock()
	tracker.entries["stale"] = time.Now().Add(-inactivityTimeout - time.Second)
	tracker.mu.Unlock()

	tracker.onTick(time.Now())
	m := receiveMetrics(t, sub)
	assert.Equal(t, 1, m.ActiveCustomers)
	assert.Equal(t, 1, tracker.Count())
}

func TestTracker_Metrics(t *testing.T) {
	t.Parallel()

	h := hub.New()
	repo := newStatsRepoMock()
	counter := visitor.NewCounter(repo, zap.NewNop())
	tracker := NewTracker(h, repo, counter, zap.NewNop())

	// 集計レコードが無いうちは0
	assert.Equal(t, Metrics{ActiveCustomers: 0, TotalVisitorsToday: 0}, tracker.Metrics())

	counter.Record("conn1")
	counter.Record("conn2")
	sub := h.Subscribe(10, event.MetricsUpdated)
	tracker.Touch("conn1")

	m := receiveMetrics(t, sub)
	assert.Equal(t, Metrics{ActiveCustomers: 1, TotalVisitorsToday: 2}, m)
}

func TestTracker_StartStop(t *testing.T) {
	t.Parallel()

	tracker, _ := setupTracker(t)
	tracker.Start()
	tracker.Stop()
	// Stopは冪等
	tracker.Stop()
}
