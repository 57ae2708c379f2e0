package ws

import (
	"strings"
)

// RoomAdmin 全スタッフダッシュボードが属する管理ルーム名
const RoomAdmin = "ADMIN"

// RoomGuestShared 共有ゲストルーム名 (ゲストIDを持たない古いクライアント用)
const RoomGuestShared = "GUEST"

const guestRoomPrefix = "guest_"

// IsGuestRoom 指定したルーム名がゲストルームかどうか
//
// ルーム名はクライアント指定の文字列で、どちらにも該当しない名前は
// 孤立ルームとして遅延作成される (拒否はしない)
func IsGuestRoom(roomID string) bool {
	return roomID == RoomGuestShared || strings.HasPrefix(roomID, guestRoomPrefix)
}
