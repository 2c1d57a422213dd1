package domain

import (
	"errors"
	"fmt"
)

type Mode string

const (
	ModeText  Mode = "text"
	ModeVoice Mode = "voice"
	ModeVideo Mode = "video"
)

var ErrUnknownMode = errors.New("unknown mode")

// Modes lists every recognized mode in a stable order.
var Modes = []Mode{ModeText, ModeVoice, ModeVideo}

func ParseMode(raw string) (Mode, error) {
	switch m := Mode(raw); m {
	case ModeText, ModeVoice, ModeVideo:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// RequiresPairing reports whether matched participants keep a standing
// relay address after the match. Text chats continue indefinitely, while
// voice and video only need it for the one-shot negotiation handshake.
func (m Mode) RequiresPairing() bool {
	return m == ModeText
}
