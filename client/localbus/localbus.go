// Package localbus 同一プロセス内のクライアントコンポーネント間で
// キー付きイベントを配送します。複数画面間の操作同期に使用します。
package localbus

import (
	"sync"
)

// Handler イベント受信関数
type Handler func(value string)

// Bus キー毎のイベントバス
type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
}

func New() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Subscribe キーに対する受信関数を登録します
func (b *Bus) Subscribe(key string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[key] = append(b.handlers[key], h)
}

// Publish キーにイベントを配送します。発行元自身の受信関数にも届きます
func (b *Bus) Publish(key, value string) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[key]))
	copy(hs, b.handlers[key])
	b.mu.RUnlock()

	for _, h := range hs {
		h(value)
	}
}
