package app

import (
	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
	"github.com/rs/zerolog/log"
)

// Registry maps every connected participant to its transport endpoint.
// It is owned by the rendezvous service and is not safe for concurrent use.
type Registry struct {
	sessions map[domain.ParticipantID]core.SignalConnection
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.ParticipantID]core.SignalConnection),
	}
}

// Bind registers conn for sid. It reports false if sid is already bound.
func (r *Registry) Bind(sid domain.ParticipantID, conn core.SignalConnection) bool {
	if _, ok := r.sessions[sid]; ok {
		return false
	}
	r.sessions[sid] = conn
	log.Debug().Str("module", "app.registry").Str("sid", sid.String()).Msg("bound session")
	return true
}

func (r *Registry) Get(sid domain.ParticipantID) (core.SignalConnection, bool) {
	conn, ok := r.sessions[sid]
	return conn, ok
}

// Unbind removes sid and reports whether it was bound.
func (r *Registry) Unbind(sid domain.ParticipantID) bool {
	if _, ok := r.sessions[sid]; !ok {
		return false
	}
	delete(r.sessions, sid)
	log.Debug().Str("module", "app.registry").Str("sid", sid.String()).Msg("unbind session")
	return true
}

func (r *Registry) Len() int { return len(r.sessions) }

// Each calls fn for every bound session in no particular order.
func (r *Registry) Each(fn func(sid domain.ParticipantID, conn core.SignalConnection)) {
	for sid, conn := range r.sessions {
		fn(sid, conn)
	}
}
