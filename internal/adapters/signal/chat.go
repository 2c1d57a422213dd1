package signal

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

var validate = validator.New()

type joinPayload struct {
	Type string `json:"type"`
	Mode string `json:"mode" validate:"required"`
}

type messagePayload struct {
	Type    string          `json:"type"`
	To      string          `json:"to" validate:"required,uuid4"`
	Message json.RawMessage `json:"message" validate:"required"`
}

type relaySignalPayload struct {
	Type   string          `json:"type"`
	To     string          `json:"to" validate:"required,uuid4"`
	Signal json.RawMessage `json:"signal" validate:"required"`
}

// decode unmarshals and validates a client frame. Invalid frames are logged
// and dropped without telling the sender.
func decode(sid domain.ParticipantID, data []byte, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		log.Debug().Err(err).Str("module", "signal").Str("sid", sid.String()).Msg("bad payload")
		return false
	}
	if err := validate.Struct(v); err != nil {
		log.Debug().Err(err).Str("module", "signal").Str("sid", sid.String()).Msg("invalid payload")
		return false
	}
	return true
}

func (ctl *SignalWSController) handleJoinQueue(sid domain.ParticipantID, data []byte) {
	var p joinPayload
	if !decode(sid, data, &p) {
		return
	}
	ctl.Orch.JoinQueue(sid, p.Mode)
}

// handleLeaveChat ends the current chat; the connection stays open.
func (ctl *SignalWSController) handleLeaveChat(sid domain.ParticipantID) {
	ctl.Orch.LeaveChat(sid)
}

func (ctl *SignalWSController) handleMessage(sid domain.ParticipantID, data []byte) {
	var p messagePayload
	if !decode(sid, data, &p) || !ctl.allowRelay(sid) {
		return
	}
	ctl.Orch.Message(sid, domain.ParticipantID(p.To), p.Message)
}

func (ctl *SignalWSController) handleRelaySignal(sid domain.ParticipantID, data []byte) {
	var p relaySignalPayload
	if !decode(sid, data, &p) || !ctl.allowRelay(sid) {
		return
	}
	ctl.Orch.Signal(sid, domain.ParticipantID(p.To), p.Signal)
}

func (ctl *SignalWSController) allowRelay(sid domain.ParticipantID) bool {
	if ctl.limiter == nil || ctl.limiter.Allow(sid) {
		return true
	}
	log.Warn().Str("module", "signal").Str("sid", sid.String()).Msg("relay rate limited")
	return false
}
