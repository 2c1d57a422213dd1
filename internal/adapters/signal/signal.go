package signal

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/VedSharma9644/Omegle-clone/internal/app/orch"
	"github.com/VedSharma9644/Omegle-clone/internal/config"
	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// Options tune the WebSocket transport.
type Options struct {
	ReadLimit         int64
	PingPeriod        time.Duration
	PongWait          time.Duration
	WriteWait         time.Duration
	SendBuffer        int
	AllowedOrigins    []string
	RelayRateLimit    int
	RelayRateInterval time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ReadLimit:         cfg.ReadLimit,
		PingPeriod:        cfg.PingPeriod,
		PongWait:          cfg.PongWait,
		WriteWait:         cfg.WriteWait,
		SendBuffer:        cfg.SendBuffer,
		AllowedOrigins:    cfg.AllowedOrigins,
		RelayRateLimit:    cfg.RelayRateLimit,
		RelayRateInterval: cfg.RelayRateInterval,
	}
}

type SignalWSController struct {
	Orch    *orch.Orchestrator
	opts    Options
	limiter *RelayRateLimiter
	upgrade websocket.Upgrader
}

func (o Options) withDefaults() Options {
	if o.ReadLimit <= 0 {
		o.ReadLimit = 64 << 10
	}
	if o.PingPeriod <= 0 {
		o.PingPeriod = 25 * time.Second
	}
	if o.PongWait <= 0 {
		o.PongWait = 60 * time.Second
	}
	if o.WriteWait <= 0 {
		o.WriteWait = 5 * time.Second
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	if len(o.AllowedOrigins) == 0 {
		o.AllowedOrigins = []string{"*"}
	}
	if o.RelayRateInterval <= 0 {
		o.RelayRateInterval = time.Second
	}
	return o
}

func NewSignalWSController(o *orch.Orchestrator, opts Options) *SignalWSController {
	opts = opts.withDefaults()
	ctl := &SignalWSController{
		Orch: o,
		opts: opts,
	}
	if opts.RelayRateLimit > 0 {
		ctl.limiter = NewRelayRateLimiter(opts.RelayRateLimit, opts.RelayRateInterval)
	}
	ctl.upgrade = websocket.Upgrader{CheckOrigin: ctl.checkOrigin}
	return ctl
}

func (ctl *SignalWSController) checkOrigin(r *http.Request) bool {
	if lo.Contains(ctl.opts.AllowedOrigins, "*") {
		return true
	}
	origin := r.Header.Get("Origin")
	// Non-browser clients send no Origin.
	return origin == "" || lo.Contains(ctl.opts.AllowedOrigins, origin)
}

type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func NewWsSignalConn(ws *websocket.Conn, buffer int) *WsSignalConn {
	return &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, buffer),
	}
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return core.ErrConnClosed
	}
	select {
	case c.send <- f:
	default:
		return core.ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// HandleSignal upgrades the request and runs the participant's pumps until
// the connection closes or ctx is canceled.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	sid := domain.NewParticipantID()
	client := c.GetString("client_token")

	ws, err := ctl.upgrade.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	log.Info().Str("module", "signal").Str("sid", sid.String()).Str("client", client).Msg("new WS connection")

	conn := NewWsSignalConn(ws, ctl.opts.SendBuffer)
	ctl.sendJSON(conn, core.NewWelcome(sid))
	ctl.Orch.OnConnect(sid, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, sid, conn)
	go ctl.readPump(ctx, cancel, sid, conn)
}
