package ws

// TargetFunc メッセージ送信対象関数
type TargetFunc func(s Session) bool

// TargetAll 全セッションを対象に送信します
func TargetAll() TargetFunc {
	return func(_ Session) bool {
		return true
	}
}

// TargetRoom 指定したルームの所属セッションを対象に送信します
func TargetRoom(roomID string) TargetFunc {
	return func(s Session) bool {
		return s.RoomID() == roomID
	}
}

// TargetAdmins 管理ルームの所属セッションを対象に送信します
func TargetAdmins() TargetFunc {
	return TargetRoom(RoomAdmin)
}

// TargetNone いずれのセッションにも送信しません
func TargetNone() TargetFunc {
	return func(_ Session) bool {
		return false
	}
}

// Or いずれかのTargetFuncの条件に該当する対象に送信します
func Or(funcs ...TargetFunc) TargetFunc {
	return func(s Session) bool {
		for _, f := range funcs {
			if f(s) {
				return true
			}
		}
		return false
	}
}

// Not TargetFuncの条件に該当しない対象に送信します
func Not(f TargetFunc) TargetFunc {
	return func(s Session) bool {
		return !f(s)
	}
}
