package rtc

import (
	"encoding/json"
	"testing"

	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/require"

	"github.com/VedSharma9644/Omegle-clone/internal/config"
)

func TestWebRTCConfig_EmptyFallsBackToDefault(t *testing.T) {
	cfg, err := WebRTCConfig(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultWebRTCConfig(), cfg)
}

func TestWebRTCConfig_StunAndTurn(t *testing.T) {
	req := require.New(t)

	cfg, err := WebRTCConfig([]config.ICEServer{
		{URLs: []string{"stun:stun.l.google.com:19302", "stun:stun1.l.google.com:19302"}},
		{URLs: []string{"turn:turn.example.com:3478?transport=udp"}, Username: "u", Credential: "p"},
	})

	req.NoError(err)
	req.Len(cfg.ICEServers, 2)
	req.Equal("u", cfg.ICEServers[1].Username)

	// The configuration must be usable by a real peer connection.
	pc, err := webrtc.NewPeerConnection(cfg)
	req.NoError(err)
	req.NoError(pc.Close())
}

func TestWebRTCConfig_RejectsBadURL(t *testing.T) {
	_, err := WebRTCConfig([]config.ICEServer{{URLs: []string{"http://example.com"}}})
	require.Error(t, err)
}

func TestWebRTCConfig_TurnNeedsCredentials(t *testing.T) {
	_, err := WebRTCConfig([]config.ICEServer{{URLs: []string{"turn:turn.example.com:3478"}}})
	require.Error(t, err)
}

func TestWebRTCConfig_JSONShapeForBrowsers(t *testing.T) {
	cfg, err := WebRTCConfig([]config.ICEServer{{URLs: []string{"stun:stun.example.com:3478"}}})
	require.NoError(t, err)

	b, err := json.Marshal(cfg.ICEServers)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1)
	require.Equal(t, []any{"stun:stun.example.com:3478"}, got[0]["urls"])
}
