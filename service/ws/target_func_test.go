package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sessionMock struct {
	key    string
	roomID string
}

func (s *sessionMock) Key() string    { return s.key }
func (s *sessionMock) RoomID() string { return s.roomID }

func TestTargetFuncs(t *testing.T) {
	t.Parallel()

	admin := &sessionMock{key: "s1", roomID: RoomAdmin}
	guest1 := &sessionMock{key: "s2", roomID: "guest_g1"}
	guest2 := &sessionMock{key: "s3", roomID: "guest_g2"}
	roomless := &sessionMock{key: "s4", roomID: ""}
	sessions := []Session{admin, guest1, guest2, roomless}

	matches := func(f TargetFunc) []string {
		var keys []string
		for _, s := range sessions {
			if f(s) {
				keys = append(keys, s.Key())
			}
		}
		return keys
	}

	t.Run("TargetAll", func(t *testing.T) {
		t.Parallel()
		assert.ElementsMatch(t, []string{"s1", "s2", "s3", "s4"}, matches(TargetAll()))
	})

	t.Run("TargetNone", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, matches(TargetNone()))
	})

	t.Run("TargetRoom", func(t *testing.T) {
		t.Parallel()
		// ゲストルーム宛は他のゲストにもルーム未所属にも届かない
		assert.ElementsMatch(t, []string{"s2"}, matches(TargetRoom("guest_g1")))
	})

	t.Run("TargetAdmins", func(t *testing.T) {
		t.Parallel()
		assert.ElementsMatch(t, []string{"s1"}, matches(TargetAdmins()))
	})

	t.Run("Or", func(t *testing.T) {
		t.Parallel()
		assert.ElementsMatch(t, []string{"s1", "s2"}, matches(Or(TargetAdmins(), TargetRoom("guest_g1"))))
	})

	t.Run("Not", func(t *testing.T) {
		t.Parallel()
		assert.ElementsMatch(t, []string{"s2", "s3", "s4"}, matches(Not(TargetAdmins())))
	})
}

func TestIsGuestRoom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		roomID string
		want   bool
	}{
		{"GUEST", true},
		{"guest_abc123", true},
		{"ADMIN", false},
		{"", false},
		{"unknown-room", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsGuestRoom(c.roomID), c.roomID)
	}
}
