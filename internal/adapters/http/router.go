package http

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/VedSharma9644/Omegle-clone/internal/adapters/signal"
	"github.com/VedSharma9644/Omegle-clone/internal/app/orch"
	"github.com/VedSharma9644/Omegle-clone/internal/config"
)

const (
	sessionName    = "ChatSessions"
	clientTokenKey = "ct"
	clientTokenCtx = "client_token"
)

// ClientTokenMiddleware gives every browser a stable anonymous token kept in
// the session cookie. It only correlates log lines; participants are still
// identified per connection.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(clientTokenKey).(string)
		if token == "" {
			token = uuid.NewString()
			session.Set(clientTokenKey, token)
			if err := session.Save(); err != nil {
				log.Warn().Err(err).Str("module", "adapters.http").Msg("session save")
			}
		}
		c.Set(clientTokenCtx, token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, o *orch.Orchestrator, ice webrtc.Configuration) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600 * 24 * 7, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(ClientTokenMiddleware())

	h := &handlers{orch: o, ice: ice}
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.GET("/stats", h.stats)
	api.GET("/ice", h.iceServers)

	ctl := signal.NewSignalWSController(o, signal.OptionsFromConfig(cfg))
	api.GET("/ws/signal", func(c *gin.Context) {
		log.Debug().Str("module", "adapters.http").Str("client", c.GetString(clientTokenCtx)).Msg("ws signal endpoint hit")
		ctl.HandleSignal(ctx, c)
	})

	r.NoRoute(spaHandler(cfg.StaticPath))

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")
	return r
}

// spaHandler serves files from root and falls back to index.html so that
// client-side routes resolve. Unknown /api paths stay 404.
func spaHandler(root string) gin.HandlerFunc {
	index := filepath.Join(root, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		clean := path.Clean("/" + c.Request.URL.Path)
		if strings.HasPrefix(clean, "/api/") || clean == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		file := filepath.Join(root, filepath.FromSlash(clean))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		if _, err := os.Stat(index); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	}
}
