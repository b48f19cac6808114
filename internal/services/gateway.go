package services

// Sender delivers one event to a single connection.
type Sender interface {
	Send(event string, data any) error
}

// Gateway fans an event out to every connected client. The websocket hub
// implements it; tests substitute a recorder.
type Gateway interface {
	Broadcast(event string, data any)
}
