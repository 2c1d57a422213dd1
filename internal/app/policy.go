package app

import (
	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

type BackpressureAction int

const (
	DropFrame BackpressureAction = iota
	KickMember
)

// Policy decides what happens to a participant whose outbound buffer is full.
type Policy interface {
	OnBackPressure(sid domain.ParticipantID, conn core.SignalConnection) BackpressureAction
}

// DropPolicy keeps the connection and loses the frame.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(domain.ParticipantID, core.SignalConnection) BackpressureAction {
	return DropFrame
}

// KickPolicy disconnects slow participants.
type KickPolicy struct{}

func (KickPolicy) OnBackPressure(domain.ParticipantID, core.SignalConnection) BackpressureAction {
	return KickMember
}

// PolicyByName maps a config value to a Policy. Unknown names fall back to drop.
func PolicyByName(name string) Policy {
	if name == "kick" {
		return KickPolicy{}
	}
	return DropPolicy{}
}
