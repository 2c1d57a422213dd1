// Package domain contains entity without logic, just meta-data
package domain

import (
	"github.com/google/uuid"
)

// ParticipantID is the ephemeral handle of one open connection.
type ParticipantID string

// NewParticipantID is a tiny helper to avoid ad-hoc uuid calls in adapters.
func NewParticipantID() ParticipantID {
	return ParticipantID(uuid.NewString())
}

func (id ParticipantID) String() string { return string(id) }
