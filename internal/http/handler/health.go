package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/keksobooking/api/pkg"
	"github.com/keksobooking/api/pkg/logger"
)

// Health keeps the legacy simple health endpoint for backwards compatibility.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"ok": true}, "ok"))
}

// Pinger abstracts a downstream dependency health probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides liveness and readiness probes checking downstream deps.
type HealthHandler struct {
	mongo       Pinger
	redis       Pinger
	pingTimeout time.Duration
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(mc *mongo.Client, rc *redis.Client) *HealthHandler {
	// Adapters turning concrete clients into Pinger
	var mongoPinger Pinger
	if mc != nil {
		mongoPinger = mongoPingerAdapter{mc}
	}
	var redisPinger Pinger
	if rc != nil {
		redisPinger = redisPingerAdapter{rc}
	}
	return &HealthHandler{
		mongo:       mongoPinger,
		redis:       redisPinger,
		pingTimeout: 1 * time.Second,
	}
}

type mongoPingerAdapter struct{ c *mongo.Client }

func (m mongoPingerAdapter) Ping(ctx context.Context) error { return m.c.Ping(ctx, nil) }

type redisPingerAdapter struct{ c *redis.Client }

func (r redisPingerAdapter) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

// Liveness reports that the process is up. Do not check external deps here.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"status": "alive"}, "ok"))
}

// Readiness checks external dependencies to decide if we can serve traffic.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pingTimeout)
	defer cancel()

	type check struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Err    string `json:"err,omitempty"`
	}
	results := make([]check, 0, 2)
	ready := true

	if h.mongo != nil {
		if err := h.mongo.Ping(ctx); err != nil {
			ready = false
			results = append(results, check{Name: "mongo", Status: "down", Err: err.Error()})
		} else {
			results = append(results, check{Name: "mongo", Status: "up"})
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			ready = false
			results = append(results, check{Name: "redis", Status: "down", Err: err.Error()})
		} else {
			results = append(results, check{Name: "redis", Status: "up"})
		}
	}

	if ready {
		c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"ready": true, "checks": results}, "ready"))
		return
	}
	logger.Warn(c.Request.Context(), "readiness failed: %+v", results)
	c.JSON(http.StatusServiceUnavailable, pkg.NewResponse(http.StatusServiceUnavailable, gin.H{"ready": false, "checks": results}, "not ready"))
}
