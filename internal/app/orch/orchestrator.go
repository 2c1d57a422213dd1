// Package orch serializes every rendezvous event through one goroutine.
package orch

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/VedSharma9644/Omegle-clone/internal/app"
)

var ErrStopped = errors.New("orchestrator stopped")

type event func(r *app.Rendezvous)

// Orchestrator owns the Rendezvous. Transport code never touches it directly:
// it submits events which run to completion one at a time on the loop.
type Orchestrator struct {
	rendezvous *app.Rendezvous
	events     chan event
	done       chan struct{}
}

func New(r *app.Rendezvous, buffer int) *Orchestrator {
	if buffer < 0 {
		buffer = 0
	}
	return &Orchestrator{
		rendezvous: r,
		events:     make(chan event, buffer),
		done:       make(chan struct{}),
	}
}

// Run processes events until ctx is canceled.
func (o *Orchestrator) Run(ctx context.Context) {
	defer close(o.done)
	log.Info().Str("module", "app.orch").Msg("event loop started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "app.orch").Msg("event loop stopped")
			return
		case ev := <-o.events:
			ev(o.rendezvous)
		}
	}
}

// Done is closed once Run has returned.
func (o *Orchestrator) Done() <-chan struct{} { return o.done }

func (o *Orchestrator) submit(ev event) bool {
	select {
	case o.events <- ev:
		return true
	case <-o.done:
		return false
	}
}
