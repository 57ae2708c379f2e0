package visitor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
)

type statsRepoMock struct {
	mu       sync.Mutex
	visitors map[string]int
	orders   map[string]int
}

func newStatsRepoMock() *statsRepoMock {
	return &statsRepoMock{
		visitors: map[string]int{},
		orders:   map[string]int{},
	}
}

func (m *statsRepoMock) IncrementDailyVisitors(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visitors[date]++
	return nil
}

func (m *statsRepoMock) IncrementTotalOrders(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[date]++
	return nil
}

func (m *statsRepoMock) GetStats(date string) (*model.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.visitors[date]; !ok {
		return nil, repository.ErrNotFound
	}
	return &model.Stats{Date: date, DailyVisitors: m.visitors[date], TotalOrdersToday: m.orders[date]}, nil
}

func (m *statsRepoMock) count(date string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visitors[date]
}

func TestCounter_Record(t *testing.T) {
	t.Parallel()

	repo := newStatsRepoMock()
	c := NewCounter(repo, zap.NewNop())
	today := model.DateKey(time.Now())

	c.Record("conn1")
	c.Record("conn1")
	c.Record("conn1")
	assert.Equal(t, 1, repo.count(today))

	c.Record("conn2")
	assert.Equal(t, 2, repo.count(today))
}

func TestCounter_RolloverIfNeeded(t *testing.T) {
	t.Parallel()

	repo := newStatsRepoMock()
	c := NewCounter(repo, zap.NewNop())
	today := model.DateKey(time.Now())

	c.Record("conn1")
	assert.Equal(t, 1, repo.count(today))

	// 日付が変わると重複排除セットがリセットされ、同一コネクションが再カウントされる
	c.RolloverIfNeeded(time.Now().Add(48 * time.Hour))
	c.Record("conn1")
	assert.Equal(t, 2, repo.count(today))

	// 同じ日のtickではリセットされない
	c.RolloverIfNeeded(time.Now())
	c.Record("conn1")
	assert.Equal(t, 2, repo.count(today))
}
