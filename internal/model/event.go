package model

// Realtime event names. These are part of the backend contract and must
// match it byte for byte.
const (
	EventMessage    = "message"
	EventTyping     = "typing"
	EventStopTyping = "stop typing"
	EventJoinRoom   = "join room"
	EventLeaveRoom  = "leave room"
)

// Event is the wire envelope for one realtime frame. Data carries either a
// chat id (typing and room events) or a JSON-serialized Message, always as
// a string; payloads are decoded explicitly at the boundary.
type Event struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// ConnState describes the realtime connection lifecycle.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}
