package app

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// Rendezvous owns the queues, the pairing table and the presence counter.
// None of its methods are safe for concurrent use: every call must come from
// the single event loop in package orch.
type Rendezvous struct {
	Registry *Registry
	Presence *Presence
	Queues   *QueueManager
	Pairs    *PairingTable
	Matcher  *Matchmaker
	Policy   Policy
}

func NewRendezvous(coin Coin, policy Policy) *Rendezvous {
	queues := NewQueueManager()
	if policy == nil {
		policy = DropPolicy{}
	}
	return &Rendezvous{
		Registry: NewRegistry(),
		Presence: &Presence{},
		Queues:   queues,
		Pairs:    NewPairingTable(),
		Matcher:  NewMatchmaker(queues, coin),
		Policy:   policy,
	}
}

// Stats is a read-only view of the rendezvous state.
type Stats struct {
	Users  int                 `json:"users"`
	Queues map[domain.Mode]int `json:"queues"`
	Pairs  int                 `json:"pairs"`
}

// Connect registers a new participant and broadcasts the new presence count.
func (r *Rendezvous) Connect(sid domain.ParticipantID, conn core.SignalConnection) bool {
	if !r.Registry.Bind(sid, conn) {
		log.Warn().Str("module", "app.rendezvous").Str("sid", sid.String()).Msg("duplicate connect ignored")
		return false
	}
	n := r.Presence.Inc()
	log.Info().Str("module", "app.rendezvous").Str("sid", sid.String()).Int("users", n).Msg("participant connected")
	r.broadcast(core.NewUserCount(n))
	return true
}

// JoinQueue moves sid into mode's queue and runs the matchmaker for mode.
// Unknown modes and unknown participants are ignored.
func (r *Rendezvous) JoinQueue(sid domain.ParticipantID, rawMode string) {
	mode, err := domain.ParseMode(rawMode)
	if err != nil {
		log.Debug().Err(err).Str("module", "app.rendezvous").Str("sid", sid.String()).Msg("join ignored")
		return
	}
	if _, ok := r.Registry.Get(sid); !ok {
		return
	}
	prev, wasQueued := r.Queues.ModeOf(sid)
	r.Queues.Enqueue(sid, mode)
	ev := log.Info().
		Str("module", "app.rendezvous").
		Str("sid", sid.String()).
		Str("mode", string(mode)).
		Int("waiting", r.Queues.Len(mode))
	if wasQueued {
		ev = ev.Str("from", string(prev))
	}
	ev.Msg("joined queue")

	for _, m := range r.Matcher.Run(mode) {
		r.announce(m)
	}
}

func (r *Rendezvous) announce(m domain.Match) {
	log.Info().
		Str("module", "app.rendezvous").
		Str("mode", string(m.Mode)).
		Str("initiator", m.Initiator.String()).
		Str("receiver", m.Receiver.String()).
		Msg("matched")
	for _, sid := range []domain.ParticipantID{m.Initiator, m.Receiver} {
		partner, _ := m.PartnerOf(sid)
		r.send(sid, core.NewMatch(m.Mode, partner, sid == m.Initiator))
	}
	if m.Mode.RequiresPairing() {
		r.Pairs.Pair(m.Initiator, m.Receiver)
	}
}

// RelaySignal forwards an opaque negotiation payload to `to`. The target is
// not checked against the sender's partner.
func (r *Rendezvous) RelaySignal(from, to domain.ParticipantID, payload json.RawMessage) {
	r.relay(from, to, core.NewSignal(from, payload), len(payload))
}

// RelayMessage forwards chat content to `to` with the same contract as RelaySignal.
func (r *Rendezvous) RelayMessage(from, to domain.ParticipantID, payload json.RawMessage) {
	r.relay(from, to, core.NewMessage(from, payload), len(payload))
}

func (r *Rendezvous) relay(from, to domain.ParticipantID, ev any, size int) {
	if _, ok := r.Registry.Get(to); !ok {
		log.Debug().Str("module", "app.rendezvous").Str("sid", from.String()).Str("to", to.String()).Msg("relay target gone, dropped")
		return
	}
	log.Debug().Str("module", "app.rendezvous").Str("sid", from.String()).Str("to", to.String()).Int("bytes", size).Msg("relay")
	r.send(to, ev)
}

// Leave unwinds queue membership and pairing without touching presence.
func (r *Rendezvous) Leave(sid domain.ParticipantID) {
	log.Info().Str("module", "app.rendezvous").Str("sid", sid.String()).Msg("leave chat")
	r.cleanup(sid)
}

// Disconnect runs cleanup and decrements presence. Only the first call for a
// connection has any effect.
func (r *Rendezvous) Disconnect(sid domain.ParticipantID) {
	if _, ok := r.Registry.Get(sid); !ok {
		return
	}
	r.cleanup(sid)
	r.Registry.Unbind(sid)
	n := r.Presence.Dec()
	log.Info().Str("module", "app.rendezvous").Str("sid", sid.String()).Int("users", n).Msg("participant disconnected")
	r.broadcast(core.NewUserCount(n))
}

func (r *Rendezvous) cleanup(sid domain.ParticipantID) {
	r.Queues.RemoveEverywhere(sid)
	r.unpair(sid)
}

func (r *Rendezvous) unpair(sid domain.ParticipantID) {
	partner, ok := r.Pairs.Unpair(sid)
	if !ok {
		return
	}
	log.Info().Str("module", "app.rendezvous").Str("sid", sid.String()).Str("partner", partner.String()).Msg("pair torn down")
	r.send(partner, core.NewPartnerDisconnected())
}

func (r *Rendezvous) Snapshot() Stats {
	return Stats{
		Users:  r.Presence.Count(),
		Queues: r.Queues.Lengths(),
		Pairs:  r.Pairs.Len(),
	}
}

func (r *Rendezvous) broadcast(ev any) {
	f, err := core.Encode(ev)
	if err != nil {
		log.Error().Err(err).Str("module", "app.rendezvous").Msg("encode broadcast")
		return
	}
	r.Registry.Each(func(sid domain.ParticipantID, conn core.SignalConnection) {
		r.deliver(sid, conn, f)
	})
}

func (r *Rendezvous) send(to domain.ParticipantID, ev any) {
	conn, ok := r.Registry.Get(to)
	if !ok {
		return
	}
	f, err := core.Encode(ev)
	if err != nil {
		log.Error().Err(err).Str("module", "app.rendezvous").Str("to", to.String()).Msg("encode event")
		return
	}
	r.deliver(to, conn, f)
}

// deliver never blocks; a full buffer is resolved by the Policy.
func (r *Rendezvous) deliver(sid domain.ParticipantID, conn core.SignalConnection, f core.Frame) {
	err := conn.TrySend(f)
	if err == nil {
		return
	}
	if !errors.Is(err, core.ErrBackpressure) {
		log.Debug().Err(err).Str("module", "app.rendezvous").Str("to", sid.String()).Msg("send failed")
		return
	}
	switch r.Policy.OnBackPressure(sid, conn) {
	case KickMember:
		log.Warn().Str("module", "app.rendezvous").Str("sid", sid.String()).Msg("backpressure, closing connection")
		conn.Close()
	case DropFrame:
		log.Warn().Str("module", "app.rendezvous").Str("sid", sid.String()).Msg("backpressure, frame dropped")
	}
}
