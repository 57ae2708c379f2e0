package ws

import (
	"fmt"

	"github.com/gorilla/websocket"
)

func (s *session) handleMessage(data []byte) {
	var m inMessage
	if err := json.Unmarshal(data, &m); err != nil {
		s.sendErrorMessage(fmt.Sprintf("invalid message: %s", data))
		return
	}

	switch m.Type {
	case MessageTypeJoinRoom:
		var req JoinRoomRequest
		if err := json.Unmarshal(m.Body, &req); err != nil || len(req.RoomID) == 0 {
			s.sendErrorMessage(fmt.Sprintf("invalid args: %s", data))
			return
		}
		s.streamer.joinRoom(s, req)

	case MessageTypeUserActivity:
		s.streamer.presence.Touch(s.key)

	default:
		s.sendErrorMessage(fmt.Sprintf("unknown command: %s", m.Type))
	}
}

func (s *session) sendErrorMessage(message string) {
	_ = s.writeMessage(&rawMessage{
		t:    websocket.TextMessage,
		data: makeMessage(MessageTypeError, message).toJSON(),
	})
}
