package notification

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts messages to every connected websocket client
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// RosterEvent is the payload pushed after a booking mutation changes a
// room's or guest's roster.
type RosterEvent struct {
	Event string `json:"event"`
	Scope string `json:"scope"`
	ID    uint   `json:"id"`
}

func NewRosterEvent(scope string, id uint) RosterEvent {
	return RosterEvent{
		Event: "roster.updated",
		Scope: scope,
		ID:    id,
	}
}

func (e RosterEvent) Build() string {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"event":"roster.updated","scope":"%s","id":%d}`, e.Scope, e.ID)
	}
	return string(data)
}
