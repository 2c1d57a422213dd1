package core

import (
	"encoding/json"

	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// Server -> client frame types.
const (
	TypeWelcome             = "welcome"
	TypeUserCount           = "userCount"
	TypeMatch               = "match"
	TypeMessage             = "message"
	TypeSignal              = "signal"
	TypePartnerDisconnected = "partnerDisconnected"
	TypePong                = "pong"
	TypeWhoAmI              = "whoami"
)

type WelcomeEvent struct {
	Type string               `json:"type"`
	ID   domain.ParticipantID `json:"id"`
}

type UserCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MatchEvent struct {
	Type      string               `json:"type"`
	Mode      domain.Mode          `json:"mode"`
	PartnerID domain.ParticipantID `json:"partnerId"`
	Initiator bool                 `json:"initiator"`
}

// MessageEvent carries chat content verbatim.
type MessageEvent struct {
	Type    string               `json:"type"`
	From    domain.ParticipantID `json:"from"`
	Message json.RawMessage      `json:"message"`
}

// SignalEvent carries an opaque negotiation payload verbatim.
type SignalEvent struct {
	Type   string               `json:"type"`
	From   domain.ParticipantID `json:"from"`
	Signal json.RawMessage      `json:"signal"`
}

type PartnerDisconnectedEvent struct {
	Type string `json:"type"`
}

type PongEvent struct {
	Type string `json:"type"`
}

type WhoAmIEvent struct {
	Type string               `json:"type"`
	ID   domain.ParticipantID `json:"id"`
}

func NewWelcome(id domain.ParticipantID) WelcomeEvent {
	return WelcomeEvent{Type: TypeWelcome, ID: id}
}

func NewUserCount(n int) UserCountEvent {
	return UserCountEvent{Type: TypeUserCount, Count: n}
}

func NewMatch(mode domain.Mode, partner domain.ParticipantID, initiator bool) MatchEvent {
	return MatchEvent{Type: TypeMatch, Mode: mode, PartnerID: partner, Initiator: initiator}
}

func NewMessage(from domain.ParticipantID, payload json.RawMessage) MessageEvent {
	return MessageEvent{Type: TypeMessage, From: from, Message: payload}
}

func NewSignal(from domain.ParticipantID, payload json.RawMessage) SignalEvent {
	return SignalEvent{Type: TypeSignal, From: from, Signal: payload}
}

func NewPartnerDisconnected() PartnerDisconnectedEvent {
	return PartnerDisconnectedEvent{Type: TypePartnerDisconnected}
}

func NewPong() PongEvent {
	return PongEvent{Type: TypePong}
}

func NewWhoAmI(id domain.ParticipantID) WhoAmIEvent {
	return WhoAmIEvent{Type: TypeWhoAmI, ID: id}
}

// Encode marshals an event into a Frame.
func Encode(v any) (Frame, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Frame(b), nil
}
