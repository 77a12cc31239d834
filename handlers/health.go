package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var startTime = time.Now()

// RegisterHealth mounts liveness, readiness and version endpoints.
// Readiness pings the store: the service has nothing to serve without it.
func RegisterHealth(r *gin.Engine, client *mongo.Client) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{}
		ready := true

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if client == nil || client.Ping(ctx, nil) != nil {
			deps["mongo"] = false
			ready = false
		} else {
			deps["mongo"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version})
	})
}
