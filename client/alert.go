package client

import (
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/client/localbus"
)

// 複数画面間の操作同期に使用するlocalbusキー
const (
	// KeyStopAllSounds 全アラート停止の同期キー
	KeyStopAllSounds = "admin_stop_all_sounds"
	// KeyMarkAsSeen 注文確認済みの同期キー。値は注文ID
	KeyMarkAsSeen = "admin_mark_as_seen"
)

// Sound アラート音の再生制御
type Sound interface {
	// Play ループ再生を開始します。ユーザー操作前は再生がブロックされる場合があります
	Play() error
	// Stop 再生を停止します
	Stop()
}

// Notifier デスクトップ通知
type Notifier interface {
	Notify(title, body string)
}

// Toaster 画面内トースト表示
type Toaster interface {
	Toast(message string)
}

// AlertCoordinator 新規注文アラートの管理を行います
//
// 未確認の注文IDをキューに保持し、キューが空になるまでアラート音を
// 鳴らし続けます。確認操作はlocalbus経由で他画面にも同期されます。
type AlertCoordinator struct {
	sound    Sound
	notifier Notifier
	toaster  Toaster
	bus      *localbus.Bus
	logger   *zap.Logger

	store SettingsStore

	mu       sync.Mutex
	pending  []string
	settings Settings
	// soundBlocked 音声再生がブラウザ側でブロックされている状態
	soundBlocked bool
	playing      bool
}

// NewAlertCoordinator アラートコーディネーターを生成します
//
// storeがnilの場合、設定は保存されずデフォルト値で動作します
func NewAlertCoordinator(sound Sound, notifier Notifier, toaster Toaster, bus *localbus.Bus, store SettingsStore, logger *zap.Logger) *AlertCoordinator {
	ac := &AlertCoordinator{
		sound:    sound,
		notifier: notifier,
		toaster:  toaster,
		bus:      bus,
		store:    store,
		logger:   logger.Named("alert"),
		settings: DefaultSettings(),
	}
	if store != nil {
		if s, err := store.Load(); err == nil {
			ac.settings = s
		}
	}

	// 他画面の操作を反映する。再ブロードキャストはしない
	bus.Subscribe(KeyMarkAsSeen, func(orderID string) {
		ac.markAsSeen(orderID)
	})
	bus.Subscribe(KeyStopAllSounds, func(string) {
		ac.stopAll()
	})

	return ac
}

// OrderReceived 新規注文を受け付け、アラートを開始します
//
// キューに残っている注文IDの二重受信は無視される。確認済みの注文が
// 再配送された場合は新規として再度アラートする
func (ac *AlertCoordinator) OrderReceived(orderID string) {
	ac.mu.Lock()
	if lo.Contains(ac.pending, orderID) {
		ac.mu.Unlock()
		return
	}
	ac.pending = append(ac.pending, orderID)
	shouldPlay := !ac.playing && ac.settings.SoundEnabled
	notify := ac.settings.NotificationsEnabled
	ac.mu.Unlock()

	if notify && ac.notifier != nil {
		ac.notifier.Notify("New Order", "Order #"+orderID+" has been placed")
	}
	if ac.toaster != nil {
		ac.toaster.Toast("New order received: #" + orderID)
	}

	if shouldPlay {
		ac.play()
	}
}

// Settings 現在のアラート設定を返します
func (ac *AlertCoordinator) Settings() Settings {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.settings
}

// UpdateSettings アラート設定を更新し、保存します
//
// 音を無効にした場合、再生中のアラート音は即座に停止します
func (ac *AlertCoordinator) UpdateSettings(s Settings) {
	ac.mu.Lock()
	ac.settings = s
	stopSound := !s.SoundEnabled && ac.playing
	if stopSound {
		ac.playing = false
	}
	ac.mu.Unlock()

	if stopSound {
		ac.sound.Stop()
	}
	if ac.store != nil {
		if err := ac.store.Save(s); err != nil {
			ac.logger.Warn("failed to save alert settings", zap.Error(err))
		}
	}
}

// MarkAsSeen 注文を確認済みにします。未確認が無くなるとアラート音が止まります
func (ac *AlertCoordinator) MarkAsSeen(orderID string) {
	ac.markAsSeen(orderID)
	ac.bus.Publish(KeyMarkAsSeen, orderID)
}

// StopAll 全アラートを停止し、未確認キューを破棄します
func (ac *AlertCoordinator) StopAll() {
	ac.stopAll()
	ac.bus.Publish(KeyStopAllSounds, "")
}

// Unlock 音声再生のブロック解除後に呼びます。未確認が残っていれば再生を再開します
func (ac *AlertCoordinator) Unlock() {
	ac.mu.Lock()
	resume := ac.soundBlocked && len(ac.pending) > 0 && ac.settings.SoundEnabled
	ac.soundBlocked = false
	ac.mu.Unlock()

	if resume {
		ac.play()
	}
}

// Pending 未確認の注文ID一覧を返します
func (ac *AlertCoordinator) Pending() []string {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ids := make([]string, len(ac.pending))
	copy(ids, ac.pending)
	return ids
}

// SoundBlocked 音声再生がブロックされているかどうか
func (ac *AlertCoordinator) SoundBlocked() bool {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.soundBlocked
}

func (ac *AlertCoordinator) markAsSeen(orderID string) {
	ac.mu.Lock()
	for i, id := range ac.pending {
		if id == orderID {
			ac.pending = append(ac.pending[:i], ac.pending[i+1:]...)
			break
		}
	}
	empty := len(ac.pending) == 0
	if empty {
		ac.playing = false
	}
	ac.mu.Unlock()

	if empty {
		ac.sound.Stop()
	}
}

func (ac *AlertCoordinator) stopAll() {
	ac.mu.Lock()
	ac.pending = ac.pending[:0]
	ac.playing = false
	ac.mu.Unlock()

	ac.sound.Stop()
}

func (ac *AlertCoordinator) play() {
	if err := ac.sound.Play(); err != nil {
		// ユーザー操作があるまで再生できない。Unlockで再開する
		ac.mu.Lock()
		ac.soundBlocked = true
		ac.mu.Unlock()
		ac.logger.Debug("sound playback blocked", zap.Error(err))
		return
	}
	ac.mu.Lock()
	ac.playing = true
	ac.mu.Unlock()
}
