package orch

import (
	"context"
	"encoding/json"

	"github.com/VedSharma9644/Omegle-clone/internal/app"
	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

func (o *Orchestrator) OnConnect(sid domain.ParticipantID, conn core.SignalConnection) {
	o.submit(func(r *app.Rendezvous) { r.Connect(sid, conn) })
}

func (o *Orchestrator) JoinQueue(sid domain.ParticipantID, mode string) {
	o.submit(func(r *app.Rendezvous) { r.JoinQueue(sid, mode) })
}

func (o *Orchestrator) LeaveChat(sid domain.ParticipantID) {
	o.submit(func(r *app.Rendezvous) { r.Leave(sid) })
}

func (o *Orchestrator) Signal(from, to domain.ParticipantID, payload json.RawMessage) {
	o.submit(func(r *app.Rendezvous) { r.RelaySignal(from, to, payload) })
}

func (o *Orchestrator) Message(from, to domain.ParticipantID, payload json.RawMessage) {
	o.submit(func(r *app.Rendezvous) { r.RelayMessage(from, to, payload) })
}

func (o *Orchestrator) OnDisconnect(sid domain.ParticipantID) {
	o.submit(func(r *app.Rendezvous) { r.Disconnect(sid) })
}

// Stats returns a snapshot taken on the event loop.
func (o *Orchestrator) Stats(ctx context.Context) (app.Stats, error) {
	reply := make(chan app.Stats, 1)
	if !o.submit(func(r *app.Rendezvous) { reply <- r.Snapshot() }) {
		return app.Stats{}, ErrStopped
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return app.Stats{}, ctx.Err()
	case <-o.done:
		// The loop may have run the event just before stopping.
		select {
		case s := <-reply:
			return s, nil
		default:
			return app.Stats{}, ErrStopped
		}
	}
}
